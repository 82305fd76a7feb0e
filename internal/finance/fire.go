package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUndefinedTarget is returned when a target needs a zero withdrawal rate
// or a zero growth factor as divisor.
var ErrUndefinedTarget = errors.New("FIRE target is undefined for a zero safe withdrawal rate")

// FireNumber is the portfolio needed to cover annualExpenses at swr percent.
func FireNumber(annualExpenses, swr decimal.Decimal) (decimal.Decimal, error) {
	if swr.IsZero() {
		return decimal.Zero, ErrUndefinedTarget
	}
	return annualExpenses.Mul(hundred).Div(swr), nil
}

// CoastFireNumber discounts the FIRE number by expectedReturn percent
// compounded over the years until retirement. A retirement age at or below
// the current age is not clamped: the exponent goes to zero or negative.
func CoastFireNumber(annualExpenses, swr decimal.Decimal, currentAge, retirementAge int, expectedReturn decimal.Decimal) (decimal.Decimal, error) {
	fire, err := FireNumber(annualExpenses, swr)
	if err != nil {
		return decimal.Zero, err
	}

	growth := decimal.NewFromInt(1).Add(expectedReturn.Div(hundred))
	if growth.IsZero() {
		return decimal.Zero, ErrUndefinedTarget
	}

	// past retirement the discount turns into growth; multiplying keeps
	// the result exact where dividing by a rounded reciprocal would not
	years := retirementAge - currentAge
	if years < 0 {
		return fire.Mul(compound(growth, -years)), nil
	}
	return fire.Div(compound(growth, years)), nil
}

// BaristaFireNumber is the portfolio needed when partTimeIncome covers part
// of annualExpenses.
func BaristaFireNumber(annualExpenses, swr, partTimeIncome decimal.Decimal) (decimal.Decimal, error) {
	if swr.IsZero() {
		return decimal.Zero, ErrUndefinedTarget
	}
	gap := annualExpenses.Sub(partTimeIncome)
	if gap.IsNegative() {
		gap = decimal.Zero
	}
	return gap.Mul(hundred).Div(swr), nil
}

// ProgressRatio is netWorth as a percentage of target. It is zero for a
// non-positive target, floored at zero, and not capped above 100.
func ProgressRatio(netWorth, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	ratio := netWorth.Mul(hundred).Div(target)
	if ratio.IsNegative() {
		return decimal.Zero
	}
	return ratio
}

// compound returns growth^years for years >= 0.
func compound(growth decimal.Decimal, years int) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	for i := 0; i < years; i++ {
		factor = factor.Mul(growth)
	}
	return factor
}
