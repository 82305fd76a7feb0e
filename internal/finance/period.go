// Package finance holds the pure calculations behind the dashboard, budget
// overview and FIRE endpoints. Nothing here touches storage or logs.
package finance

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fire-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// UncategorizedBucket is the key used for spend without a category.
const UncategorizedBucket = "Senza Categoria"

var (
	ErrMalformedPeriod = errors.New("period start is after period end")
	ErrMalformedDate   = errors.New("transaction date is missing")
)

// Period is an inclusive time range.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a period, rejecting ranges whose start is after the end.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() || start.After(end) {
		return Period{}, ErrMalformedPeriod
	}
	return Period{Start: start, End: end}, nil
}

// MonthOf returns the calendar month containing ref, in ref's location.
func MonthOf(ref time.Time) Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Period{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// TrailingMonths returns the n complete calendar months before ref's month.
func TrailingMonths(ref time.Time, n int) Period {
	current := MonthOf(ref)
	return Period{
		Start: current.Start.AddDate(0, -n, 0),
		End:   current.Start.Add(-time.Nanosecond),
	}
}

// Contains reports whether t falls within the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Aggregator sums transactions that fall within a single period.
type Aggregator struct {
	period Period
}

func NewAggregator(period Period) Aggregator {
	return Aggregator{period: period}
}

func (a Aggregator) Period() Period {
	return a.period
}

// SumByType returns the sum of absolute amounts of txType transactions in the period.
func (a Aggregator) SumByType(txns []models.Transaction, txType string) (decimal.Decimal, error) {
	total := decimal.Zero
	err := a.each(txns, txType, func(t *models.Transaction) {
		total = total.Add(t.Amount.Abs())
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumByCategory returns per-category sums of absolute amounts of txType
// transactions in the period. Uncategorized spend is keyed by UncategorizedBucket.
func (a Aggregator) SumByCategory(txns []models.Transaction, txType string) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	err := a.each(txns, txType, func(t *models.Transaction) {
		key := UncategorizedBucket
		if t.Category != nil && *t.Category != "" {
			key = *t.Category
		}
		sums[key] = sums[key].Add(t.Amount.Abs())
	})
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// Count returns the number of transactions of any type in the period.
func (a Aggregator) Count(txns []models.Transaction) (int64, error) {
	var n int64
	err := a.each(txns, "", func(*models.Transaction) { n++ })
	return n, err
}

// each calls fn for every transaction in the period matching txType.
// An empty txType matches every type.
func (a Aggregator) each(txns []models.Transaction, txType string, fn func(*models.Transaction)) error {
	for i := range txns {
		t := &txns[i]
		if t.Date.IsZero() {
			return fmt.Errorf("%w: transaction %s", ErrMalformedDate, t.ID)
		}
		if txType != "" && t.Type != txType {
			continue
		}
		if !a.period.Contains(t.Date) {
			continue
		}
		fn(t)
	}
	return nil
}

// SortCategoryTotals orders sums by descending total, ties by name ascending.
func SortCategoryTotals(sums map[string]decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}
