package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

type BudgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
	}
}

func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	if req == nil {
		return nil, validationError(fmt.Errorf("request body is required"))
	}

	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:         userID,
		Category:       strings.TrimSpace(req.Category),
		Amount:         amount,
		AlertThreshold: req.AlertThreshold,
		Status:         req.Status,
		StartDate:      startDate,
	}
	if budget.Status == "" {
		budget.Status = models.BudgetStatusActive
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		budget.EndDate = &endDate
	}

	if err := budget.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *BudgetService) GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error) {
	return s.budgetRepo.GetByIDForUser(budgetID, userID)
}

// ListBudgets returns the user's budgets, optionally restricted to one status.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, status string) ([]models.Budget, error) {
	if status != "" && !models.IsValidBudgetStatus(status) {
		return nil, validationError(models.ErrInvalidBudgetStatus)
	}
	return s.budgetRepo.GetByUserID(userID, status)
}

func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	if req == nil {
		return nil, validationError(fmt.Errorf("request body is required"))
	}

	budget, err := s.budgetRepo.GetByIDForUser(budgetID, userID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		budget.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		amount, err := parseAmount("amount", *req.Amount)
		if err != nil {
			return nil, err
		}
		budget.Amount = amount
	}
	if req.AlertThreshold != nil {
		threshold := *req.AlertThreshold
		budget.AlertThreshold = &threshold
	}
	if req.Status != nil {
		budget.Status = *req.Status
	}
	if req.StartDate != nil {
		startDate, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		budget.StartDate = startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			budget.EndDate = nil
		} else {
			endDate, err := parseDate("end_date", *req.EndDate)
			if err != nil {
				return nil, err
			}
			budget.EndDate = &endDate
		}
	}

	if err := budget.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	return s.budgetRepo.Delete(budgetID, userID)
}

// GetOverview compares the ACTIVE budgets applying to period with the
// period's expense spend per category.
func (s *BudgetService) GetOverview(ctx context.Context, userID uuid.UUID, period finance.Period) ([]models.BudgetOverviewItem, error) {
	if _, err := finance.NewPeriod(period.Start, period.End); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.GetByUserID(userID, models.BudgetStatusActive)
	if err != nil {
		return nil, err
	}

	applicable := finance.ActiveBudgets(budgets, period)
	if len(applicable) == 0 {
		return []models.BudgetOverviewItem{}, nil
	}

	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start, period.End)
	if err != nil {
		return nil, err
	}

	spend, err := finance.NewAggregator(period).SumByCategory(transactions, models.TransactionTypeExpense)
	if err != nil {
		if errors.Is(err, finance.ErrMalformedDate) {
			s.auditLogger.LogMalformedRecord(ctx, userID, "transaction", err.Error())
		}
		return nil, err
	}

	items := finance.EvaluateBudgets(applicable, spend)
	for _, item := range items {
		s.metrics.IncrementCounter("budget_overview_status", map[string]string{
			"status": item.Status,
		})
		if item.Status != models.BudgetHealthSafe {
			s.auditLogger.LogBudgetAlert(ctx, userID, item)
		}
	}

	return items, nil
}
