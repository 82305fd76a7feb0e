package finance

import (
	"sort"

	"fire-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ActiveBudgets returns the ACTIVE budgets whose date range overlaps the period.
func ActiveBudgets(budgets []models.Budget, period Period) []models.Budget {
	out := make([]models.Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.IsActive() && b.AppliesTo(period.Start, period.End) {
			out = append(out, b)
		}
	}
	return out
}

// BudgetPercentage is min(100, 100*spent/amount) rounded to one decimal,
// or zero when the budget amount is zero.
func BudgetPercentage(spent, amount decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	pct := spent.Mul(hundred).Div(amount)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	return pct.Round(1)
}

// BudgetHealth maps a percentage to safe, warning or danger. A zero
// percentage, from no spend or a zero amount, is always safe.
func BudgetHealth(percentage decimal.Decimal, threshold int) string {
	switch {
	case percentage.IsZero():
		return models.BudgetHealthSafe
	case percentage.GreaterThanOrEqual(hundred):
		return models.BudgetHealthDanger
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(int64(threshold))):
		return models.BudgetHealthWarning
	default:
		return models.BudgetHealthSafe
	}
}

// EvaluateBudgets compares each budget with the spend recorded for its
// category. Results are sorted by category, case-sensitive ascending.
func EvaluateBudgets(budgets []models.Budget, spend map[string]decimal.Decimal) []models.BudgetOverviewItem {
	items := make([]models.BudgetOverviewItem, 0, len(budgets))
	for _, b := range budgets {
		spent, ok := spend[b.Category]
		if !ok {
			spent = decimal.Zero
		}
		pct := BudgetPercentage(spent, b.Amount)
		items = append(items, models.BudgetOverviewItem{
			BudgetID:   b.ID.String(),
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      spent,
			Percentage: pct,
			Status:     BudgetHealth(pct, b.Threshold()),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category < items[j].Category
	})
	return items
}
