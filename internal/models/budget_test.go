package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestBudget_Validate(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{
			name:   "valid open-ended budget",
			budget: Budget{UserID: userID, Category: "Dining", Amount: decimal.NewFromInt(200), Status: BudgetStatusActive, StartDate: start},
		},
		{
			name:   "zero amount is allowed",
			budget: Budget{UserID: userID, Category: "Dining", Amount: decimal.Zero, Status: BudgetStatusPaused, StartDate: start},
		},
		{
			name:    "missing category",
			budget:  Budget{UserID: userID, Amount: decimal.NewFromInt(200), Status: BudgetStatusActive, StartDate: start},
			wantErr: ErrBudgetCategoryRequired,
		},
		{
			name:    "negative amount",
			budget:  Budget{UserID: userID, Category: "Dining", Amount: decimal.NewFromInt(-1), Status: BudgetStatusActive, StartDate: start},
			wantErr: ErrNegativeBudgetAmount,
		},
		{
			name:    "invalid status",
			budget:  Budget{UserID: userID, Category: "Dining", Amount: decimal.NewFromInt(1), Status: "DRAFT", StartDate: start},
			wantErr: ErrInvalidBudgetStatus,
		},
		{
			name:    "threshold above 100",
			budget:  Budget{UserID: userID, Category: "Dining", Amount: decimal.NewFromInt(1), Status: BudgetStatusActive, StartDate: start, AlertThreshold: intPtr(101)},
			wantErr: ErrInvalidAlertThreshold,
		},
		{
			name:    "end before start",
			budget:  Budget{UserID: userID, Category: "Dining", Amount: decimal.NewFromInt(1), Status: BudgetStatusActive, StartDate: start, EndDate: &before},
			wantErr: ErrBudgetEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_Threshold(t *testing.T) {
	assert.Equal(t, DefaultAlertThreshold, (&Budget{}).Threshold())
	assert.Equal(t, 50, (&Budget{AlertThreshold: intPtr(50)}).Threshold())
}

func TestBudget_AppliesTo(t *testing.T) {
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	lastOfFeb := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	firstOfMarch := monthStart
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Budget{StartDate: feb}).AppliesTo(monthStart, monthEnd), "open ended")
	assert.True(t, (&Budget{StartDate: feb, EndDate: &firstOfMarch}).AppliesTo(monthStart, monthEnd), "ends on month start")
	assert.False(t, (&Budget{StartDate: feb, EndDate: &lastOfFeb}).AppliesTo(monthStart, monthEnd), "ended before month")
	assert.False(t, (&Budget{StartDate: april}).AppliesTo(monthStart, monthEnd), "starts after month")
	assert.True(t, (&Budget{StartDate: monthEnd}).AppliesTo(monthStart, monthEnd), "starts on month end")
}

func TestBudget_BeforeCreateDefaultsStatus(t *testing.T) {
	b := &Budget{UserID: uuid.New(), Category: "Travel", Amount: decimal.NewFromInt(500), StartDate: time.Now()}

	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, BudgetStatusActive, b.Status)
	assert.NotEqual(t, uuid.Nil, b.ID)
}
