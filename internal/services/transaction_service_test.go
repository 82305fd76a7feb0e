package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/repositories/repository_mocks"
	"fire-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *repository_mocks.MockTransactionRepositoryInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     TransactionServiceInterface
	ctx         context.Context
	userID      uuid.UUID
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewTransactionService(s.repo, s.auditLogger, s.metrics)
	s.ctx = context.WithValue(context.Background(), CorrelationIDKey, "test-trace")
	s.userID = uuid.New()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) createRequest() *dto.CreateTransactionRequest {
	category := "  Groceries "
	return &dto.CreateTransactionRequest{
		Description: gofakeit.Company(),
		Amount:      "-45.50",
		Type:        models.TransactionTypeExpense,
		Category:    &category,
		Date:        "2024-03-14",
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := s.createRequest()

	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *models.Transaction) error {
		txn.ID = uuid.New()
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("transaction_recorded", map[string]string{"type": models.TransactionTypeExpense}).Times(1)
	s.auditLogger.EXPECT().LogTransactionRecorded(s.ctx, s.userID, gomock.Any(), models.TransactionTypeExpense, "45.50").Times(1)

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal(s.userID, txn.UserID)
	s.True(txn.Amount.Equal(decimal.RequireFromString("45.50")), "amount is stored as a magnitude")
	s.Require().NotNil(txn.Category)
	s.Equal("Groceries", *txn.Category)
	s.Equal(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), txn.Date)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_BlankCategoryStoredAsNil() {
	req := s.createRequest()
	blank := "   "
	req.Category = &blank

	s.repo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).Times(1)
	s.auditLogger.EXPECT().LogTransactionRecorded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Nil(txn.Category)
	s.Equal(models.UncategorizedLabel, txn.CategoryName())
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_ValidationErrors() {
	testCases := []struct {
		name   string
		mutate func(req *dto.CreateTransactionRequest)
	}{
		{"zero amount", func(req *dto.CreateTransactionRequest) { req.Amount = "0" }},
		{"malformed amount", func(req *dto.CreateTransactionRequest) { req.Amount = "12,50" }},
		{"unknown type", func(req *dto.CreateTransactionRequest) { req.Type = "TRANSFER" }},
		{"bad date", func(req *dto.CreateTransactionRequest) { req.Date = "14/03/2024" }},
		{"empty description", func(req *dto.CreateTransactionRequest) { req.Description = "  " }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.createRequest()
			tc.mutate(req)

			txn, err := s.service.CreateTransaction(s.ctx, s.userID, req)

			s.Nil(txn)
			s.ErrorIs(err, ErrValidation)
		})
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NilRequest() {
	_, err := s.service.CreateTransaction(s.ctx, s.userID, nil)
	s.ErrorIs(err, ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_RepositoryError() {
	s.repo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed")).Times(1)

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, s.createRequest())

	s.Nil(txn)
	s.EqualError(err, "insert failed")
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	txID := uuid.New()
	s.repo.EXPECT().GetByIDForUser(txID, s.userID).Return(nil, repositories.ErrTransactionNotFound).Times(1)

	_, err := s.service.GetTransaction(s.ctx, s.userID, txID)

	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactions_NormalizesPaging() {
	filters := models.TransactionFilters{UserID: s.userID, Offset: -5, Limit: 500}

	s.repo.EXPECT().GetWithFilters(gomock.Any()).DoAndReturn(func(f models.TransactionFilters) ([]models.Transaction, int64, error) {
		s.Equal(0, f.Offset)
		s.Equal(MaxPageLimit, f.Limit)
		return []models.Transaction{}, 0, nil
	}).Times(1)

	_, total, err := s.service.ListTransactions(s.ctx, filters)

	s.NoError(err)
	s.Equal(int64(0), total)
}

func (s *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	s.repo.EXPECT().GetWithFilters(gomock.Any()).DoAndReturn(func(f models.TransactionFilters) ([]models.Transaction, int64, error) {
		s.Equal(DefaultPageLimit, f.Limit)
		return nil, 0, nil
	}).Times(1)

	_, _, err := s.service.ListTransactions(s.ctx, models.TransactionFilters{UserID: s.userID})
	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestListTransactions_RejectsInvalidFilters() {
	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := s.service.ListTransactions(s.ctx, models.TransactionFilters{UserID: s.userID, StartDate: &start, EndDate: &end})
	s.ErrorIs(err, ErrValidation)

	_, _, err = s.service.ListTransactions(s.ctx, models.TransactionFilters{UserID: s.userID, Type: "REFUND"})
	s.ErrorIs(err, ErrValidation)

	_, _, err = s.service.ListTransactions(s.ctx, models.TransactionFilters{})
	s.ErrorIs(err, ErrInvalidUserID)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_AppliesProvidedFields() {
	txID := uuid.New()
	category := "Dining"
	existing := &models.Transaction{
		ID:          txID,
		UserID:      s.userID,
		Description: "Lunch",
		Amount:      decimal.NewFromInt(12),
		Category:    &category,
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	newAmount := "18.20"
	empty := ""
	req := &dto.UpdateTransactionRequest{Amount: &newAmount, Category: &empty}

	s.repo.EXPECT().GetByIDForUser(txID, s.userID).Return(existing, nil).Times(1)
	s.repo.EXPECT().Update(existing).Return(nil).Times(1)

	txn, err := s.service.UpdateTransaction(s.ctx, s.userID, txID, req)

	s.Require().NoError(err)
	s.Equal("Lunch", txn.Description)
	s.True(txn.Amount.Equal(decimal.RequireFromString("18.20")))
	s.Nil(txn.Category)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_InvalidTypeRejected() {
	txID := uuid.New()
	existing := &models.Transaction{
		ID:          txID,
		UserID:      s.userID,
		Description: "Salary",
		Amount:      decimal.NewFromInt(3000),
		Type:        models.TransactionTypeIncome,
		Date:        time.Now(),
	}
	badType := "BONUS"

	s.repo.EXPECT().GetByIDForUser(txID, s.userID).Return(existing, nil).Times(1)

	_, err := s.service.UpdateTransaction(s.ctx, s.userID, txID, &dto.UpdateTransactionRequest{Type: &badType})

	s.ErrorIs(err, ErrValidation)
	s.ErrorIs(err, models.ErrInvalidTransactionType)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_PassesThroughNotFound() {
	txID := uuid.New()
	s.repo.EXPECT().Delete(txID, s.userID).Return(repositories.ErrTransactionNotFound).Times(1)

	err := s.service.DeleteTransaction(s.ctx, s.userID, txID)

	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}
