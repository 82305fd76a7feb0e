package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/repositories/repository_mocks"
	"fire-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	budgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	txRepo      *repository_mocks.MockTransactionRepositoryInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     BudgetServiceInterface
	ctx         context.Context
	userID      uuid.UUID
	march       finance.Period
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.txRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewBudgetService(s.budgetRepo, s.txRepo, s.auditLogger, s.metrics)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.march = finance.MonthOf(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceTestSuite) budget(category string, amount int64) models.Budget {
	return models.Budget{
		ID:        uuid.New(),
		UserID:    s.userID,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		Status:    models.BudgetStatusActive,
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *BudgetServiceTestSuite) expense(category string, amount string, day int) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      s.userID,
		Description: "purchase",
		Amount:      decimal.RequireFromString(amount),
		Category:    &category,
		Type:        models.TransactionTypeExpense,
		Date:        time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC),
	}
}

func (s *BudgetServiceTestSuite) TestCreateBudget_DefaultsToActive() {
	req := &dto.CreateBudgetRequest{
		Category:  " Groceries ",
		Amount:    "400",
		StartDate: "2024-03-01",
	}

	s.budgetRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	budget, err := s.service.CreateBudget(s.ctx, s.userID, req)

	s.Require().NoError(err)
	s.Equal("Groceries", budget.Category)
	s.Equal(models.BudgetStatusActive, budget.Status)
	s.Nil(budget.EndDate)
	s.Equal(models.DefaultAlertThreshold, budget.Threshold())
}

func (s *BudgetServiceTestSuite) TestCreateBudget_ValidationErrors() {
	endBeforeStart := "2024-02-01"
	badThreshold := 120

	testCases := []struct {
		name string
		req  *dto.CreateBudgetRequest
		want error
	}{
		{"negative amount", &dto.CreateBudgetRequest{Category: "Dining", Amount: "-1", StartDate: "2024-03-01"}, models.ErrNegativeBudgetAmount},
		{"end before start", &dto.CreateBudgetRequest{Category: "Dining", Amount: "100", StartDate: "2024-03-01", EndDate: &endBeforeStart}, models.ErrBudgetEndBeforeStart},
		{"threshold out of range", &dto.CreateBudgetRequest{Category: "Dining", Amount: "100", StartDate: "2024-03-01", AlertThreshold: &badThreshold}, models.ErrInvalidAlertThreshold},
		{"unknown status", &dto.CreateBudgetRequest{Category: "Dining", Amount: "100", StartDate: "2024-03-01", Status: "DRAFT"}, models.ErrInvalidBudgetStatus},
		{"missing category", &dto.CreateBudgetRequest{Category: " ", Amount: "100", StartDate: "2024-03-01"}, models.ErrBudgetCategoryRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateBudget(s.ctx, s.userID, tc.req)
			s.ErrorIs(err, ErrValidation)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *BudgetServiceTestSuite) TestListBudgets_RejectsUnknownStatus() {
	_, err := s.service.ListBudgets(s.ctx, s.userID, "DONE")
	s.ErrorIs(err, ErrValidation)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_ClearsEndDate() {
	budgetID := uuid.New()
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	existing := s.budget("Travel", 600)
	existing.ID = budgetID
	existing.EndDate = &end

	empty := ""
	paused := models.BudgetStatusPaused

	s.budgetRepo.EXPECT().GetByIDForUser(budgetID, s.userID).Return(&existing, nil).Times(1)
	s.budgetRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	updated, err := s.service.UpdateBudget(s.ctx, s.userID, budgetID, &dto.UpdateBudgetRequest{EndDate: &empty, Status: &paused})

	s.Require().NoError(err)
	s.Nil(updated.EndDate)
	s.Equal(models.BudgetStatusPaused, updated.Status)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	budgetID := uuid.New()
	s.budgetRepo.EXPECT().Delete(budgetID, s.userID).Return(repositories.ErrBudgetNotFound).Times(1)

	s.ErrorIs(s.service.DeleteBudget(s.ctx, s.userID, budgetID), repositories.ErrBudgetNotFound)
}

func (s *BudgetServiceTestSuite) TestGetOverview_StatusBands() {
	budgets := []models.Budget{
		s.budget("Groceries", 400),
		s.budget("Dining", 200),
		s.budget("Travel", 500),
	}
	transactions := []models.Transaction{
		s.expense("Groceries", "120.00", 3),
		s.expense("Dining", "170.00", 8),
		s.expense("Travel", "650.00", 20),
	}

	s.budgetRepo.EXPECT().GetByUserID(s.userID, models.BudgetStatusActive).Return(budgets, nil).Times(1)
	s.txRepo.EXPECT().GetByDateRange(s.userID, s.march.Start, s.march.End).Return(transactions, nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("budget_overview_status", gomock.Any()).Times(3)
	s.auditLogger.EXPECT().LogBudgetAlert(s.ctx, s.userID, gomock.Any()).Times(2)

	items, err := s.service.GetOverview(s.ctx, s.userID, s.march)

	s.Require().NoError(err)
	s.Require().Len(items, 3)

	s.Equal("Dining", items[0].Category)
	s.Equal(models.BudgetHealthWarning, items[0].Status)
	s.True(items[0].Percentage.Equal(decimal.NewFromInt(85)))

	s.Equal("Groceries", items[1].Category)
	s.Equal(models.BudgetHealthSafe, items[1].Status)
	s.True(items[1].Percentage.Equal(decimal.NewFromInt(30)))

	s.Equal("Travel", items[2].Category)
	s.Equal(models.BudgetHealthDanger, items[2].Status)
	s.True(items[2].Percentage.Equal(decimal.NewFromInt(100)), "percentage is capped")
	s.True(items[2].Spent.Equal(decimal.NewFromInt(650)))
}

func (s *BudgetServiceTestSuite) TestGetOverview_NoApplicableBudgets() {
	future := s.budget("Groceries", 400)
	future.StartDate = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	s.budgetRepo.EXPECT().GetByUserID(s.userID, models.BudgetStatusActive).Return([]models.Budget{future}, nil).Times(1)

	items, err := s.service.GetOverview(s.ctx, s.userID, s.march)

	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *BudgetServiceTestSuite) TestGetOverview_MalformedTransactionDate() {
	broken := s.expense("Groceries", "10.00", 1)
	broken.Date = time.Time{}

	s.budgetRepo.EXPECT().GetByUserID(s.userID, models.BudgetStatusActive).Return([]models.Budget{s.budget("Groceries", 400)}, nil).Times(1)
	s.txRepo.EXPECT().GetByDateRange(s.userID, s.march.Start, s.march.End).Return([]models.Transaction{broken}, nil).Times(1)
	s.auditLogger.EXPECT().LogMalformedRecord(s.ctx, s.userID, "transaction", gomock.Any()).Times(1)

	_, err := s.service.GetOverview(s.ctx, s.userID, s.march)

	s.ErrorIs(err, finance.ErrMalformedDate)
}

func (s *BudgetServiceTestSuite) TestGetOverview_InvalidPeriod() {
	_, err := s.service.GetOverview(s.ctx, s.userID, finance.Period{Start: s.march.End, End: s.march.Start})
	s.ErrorIs(err, finance.ErrMalformedPeriod)
}

func (s *BudgetServiceTestSuite) TestGetOverview_RepositoryError() {
	s.budgetRepo.EXPECT().GetByUserID(s.userID, models.BudgetStatusActive).Return(nil, errors.New("db down")).Times(1)

	_, err := s.service.GetOverview(s.ctx, s.userID, s.march)

	s.EqualError(err, "db down")
}
