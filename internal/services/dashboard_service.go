package services

import (
	"context"
	"errors"
	"time"

	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/palette"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	palette         *palette.Palette
	auditLogger     AuditLoggerInterface
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	colors *palette.Palette,
	auditLogger AuditLoggerInterface,
) DashboardServiceInterface {
	return &DashboardService{
		transactionRepo: transactionRepo,
		palette:         colors,
		auditLogger:     auditLogger,
	}
}

// GetSummary totals income and expenses for the period. The savings rate is
// 100*(income-expenses)/income rounded to one decimal, zero without income.
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID, period finance.Period) (*models.DashboardSummary, error) {
	transactions, agg, err := s.load(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	income, err := agg.SumByType(transactions, models.TransactionTypeIncome)
	if err != nil {
		return nil, s.malformed(ctx, userID, err)
	}

	expenses, err := agg.SumByType(transactions, models.TransactionTypeExpense)
	if err != nil {
		return nil, s.malformed(ctx, userID, err)
	}

	count, err := agg.Count(transactions)
	if err != nil {
		return nil, s.malformed(ctx, userID, err)
	}

	net := income.Sub(expenses)
	rate := decimal.Zero
	if income.IsPositive() {
		rate = net.Mul(decimal.NewFromInt(100)).Div(income).Round(1)
	}

	return &models.DashboardSummary{
		Month:            monthLabel(period),
		StartDate:        period.Start,
		EndDate:          period.End,
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetSavings:       net,
		SavingsRate:      rate,
		TransactionCount: count,
		GeneratedAt:      time.Now(),
	}, nil
}

// GetCategorySpending returns per-category totals ordered by descending value,
// each with its chart color.
func (s *DashboardService) GetCategorySpending(ctx context.Context, userID uuid.UUID, period finance.Period, transactionType string) ([]models.CategorySpendingEntry, error) {
	if transactionType == "" {
		transactionType = models.TransactionTypeExpense
	}
	if !models.IsValidTransactionType(transactionType) {
		return nil, validationError(models.ErrInvalidTransactionType)
	}

	transactions, agg, err := s.load(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	sums, err := agg.SumByCategory(transactions, transactionType)
	if err != nil {
		return nil, s.malformed(ctx, userID, err)
	}

	totals := finance.SortCategoryTotals(sums)
	names := make([]string, len(totals))
	for i, total := range totals {
		names[i] = total.Category
	}
	colors := s.palette.Assign(names)

	entries := make([]models.CategorySpendingEntry, len(totals))
	for i, total := range totals {
		entries[i] = models.CategorySpendingEntry{Name: total.Category, Value: total.Total, Color: colors[i]}
	}

	return entries, nil
}

func (s *DashboardService) load(ctx context.Context, userID uuid.UUID, period finance.Period) ([]models.Transaction, finance.Aggregator, error) {
	if _, err := finance.NewPeriod(period.Start, period.End); err != nil {
		return nil, finance.Aggregator{}, err
	}

	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start, period.End)
	if err != nil {
		return nil, finance.Aggregator{}, err
	}

	return transactions, finance.NewAggregator(period), nil
}

func (s *DashboardService) malformed(ctx context.Context, userID uuid.UUID, err error) error {
	if errors.Is(err, finance.ErrMalformedDate) {
		s.auditLogger.LogMalformedRecord(ctx, userID, "transaction", err.Error())
	}
	return err
}

// monthLabel returns YYYY-MM when period is exactly one calendar month.
func monthLabel(period finance.Period) string {
	month := finance.MonthOf(period.Start)
	if month.Start.Equal(period.Start) && month.End.Equal(period.End) {
		return period.Start.Format("2006-01")
	}
	return ""
}
