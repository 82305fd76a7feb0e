package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fire-tracker/internal/dto"

	"github.com/shopspring/decimal"
)

// ErrValidation marks input rejected before it reaches storage. The wrapped
// error carries the specific reason.
var ErrValidation = errors.New("validation failed")

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, validationError(fmt.Errorf("invalid %s %q", field, raw))
	}
	return amount, nil
}

// parseDate reads a YYYY-MM-DD date as midnight UTC.
func parseDate(field, raw string) (time.Time, error) {
	date, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, validationError(fmt.Errorf("invalid %s %q", field, raw))
	}
	return date, nil
}
