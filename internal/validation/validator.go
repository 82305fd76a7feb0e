package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"fire-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxMoneyDecimals is the number of fractional digits accepted for amounts and rates
const MaxMoneyDecimals = 2

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Validator is the go-playground validator loaded with the domain rules.
// It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("budget_status", validateBudgetStatus)
	_ = v.RegisterValidation("year_month", validateYearMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// IsYearMonth reports whether s is a YYYY-MM month
func IsYearMonth(s string) bool {
	return yearMonthPattern.MatchString(s)
}

// Custom validation functions

// validateMoney accepts a decimal string with at most two fractional digits.
// The sign is not checked here; each entity decides whether it strips or rejects it.
func validateMoney(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return amount.Exponent() >= -MaxMoneyDecimals || amount.Equal(amount.Round(MaxMoneyDecimals))
}

// validateTransactionType validates that transaction type is INCOME or EXPENSE
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateBudgetStatus validates that budget status is ACTIVE, PAUSED or ARCHIVED
func validateBudgetStatus(fl validator.FieldLevel) bool {
	return models.IsValidBudgetStatus(fl.Field().String())
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return IsYearMonth(fl.Field().String())
}
