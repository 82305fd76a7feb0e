package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BudgetHealthSafe    = "safe"
	BudgetHealthWarning = "warning"
	BudgetHealthDanger  = "danger"
)

// CategorySpendingEntry is one slice of a category breakdown chart
type CategorySpendingEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// BudgetOverviewItem compares one budget against the month's spend
type BudgetOverviewItem struct {
	BudgetID   string          `json:"budget_id"`
	Category   string          `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     string          `json:"status"`
}

// FireProgress holds FIRE targets and the current progress toward each
type FireProgress struct {
	FireTarget          decimal.Decimal `json:"fire_target"`
	CoastFireTarget     decimal.Decimal `json:"coast_fire_target"`
	BaristaFireTarget   decimal.Decimal `json:"barista_fire_target"`
	CurrentNetWorth     decimal.Decimal `json:"current_net_worth"`
	AnnualExpenses      decimal.Decimal `json:"annual_expenses"`
	PartTimeIncome      decimal.Decimal `json:"part_time_income"`
	YearsToRetirement   int             `json:"years_to_retirement"`
	FireProgress        decimal.Decimal `json:"fire_progress"`
	CoastFireProgress   decimal.Decimal `json:"coast_fire_progress"`
	BaristaFireProgress decimal.Decimal `json:"barista_fire_progress"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// DashboardSummary holds income, expenses and savings for a period
type DashboardSummary struct {
	Month            string          `json:"month,omitempty"`
	StartDate        time.Time       `json:"start_date"`
	EndDate          time.Time       `json:"end_date"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetSavings       decimal.Decimal `json:"net_savings"`
	SavingsRate      decimal.Decimal `json:"savings_rate"`
	TransactionCount int64           `json:"transaction_count"`
	GeneratedAt      time.Time       `json:"generated_at"`
}
