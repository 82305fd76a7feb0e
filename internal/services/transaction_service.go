package services

import (
	"context"
	"fmt"
	"strings"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type TransactionService struct {
	repo        repositories.TransactionRepositoryInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &TransactionService{
		repo:        repo,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req == nil {
		return nil, validationError(fmt.Errorf("request body is required"))
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
		Category:    trimmedCategory(req.Category),
		Type:        req.Type,
		Date:        date,
		Notes:       req.Notes,
	}

	transaction.Normalize()
	if err := transaction.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Create(transaction); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transaction_recorded", map[string]string{
		"type": transaction.Type,
	})
	s.auditLogger.LogTransactionRecorded(ctx, userID, transaction.ID, transaction.Type, transaction.Amount.StringFixed(2))

	return transaction, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.repo.GetByIDForUser(transactionID, userID)
}

// ListTransactions returns one page of the user's transactions, newest first.
// Out-of-range paging values fall back to the defaults.
func (s *TransactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.UserID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, 0, validationError(fmt.Errorf("startDate is after endDate"))
	}

	if filters.Type != "" && !models.IsValidTransactionType(filters.Type) {
		return nil, 0, validationError(models.ErrInvalidTransactionType)
	}

	filters.Offset, filters.Limit = NormalizePage(filters.Offset, filters.Limit)
	return s.repo.GetWithFilters(filters)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if req == nil {
		return nil, validationError(fmt.Errorf("request body is required"))
	}

	transaction, err := s.repo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		transaction.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		amount, err := parseAmount("amount", *req.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Category != nil {
		transaction.Category = trimmedCategory(req.Category)
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}

	transaction.Normalize()
	if err := transaction.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Update(transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	return s.repo.Delete(transactionID, userID)
}

// trimmedCategory returns nil for a missing or blank category.
func trimmedCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizePage clamps paging values to the accepted range
func NormalizePage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return offset, limit
}
