package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// layoutHints spells Go date layouts the way clients write them
var layoutHints = map[string]string{
	"2006-01-02": "YYYY-MM-DD",
	"2006-01":    "YYYY-MM",
}

var fixedMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email address",
	"alpha":            "must contain only alphabetic characters",
	"alphanum":         "must contain only alphanumeric characters",
	"numeric":          "must be a valid number",
	"uuid":             "must be a valid UUID",
	"uuid4":            "must be a valid UUID v4",
	"money":            "must be a decimal amount with at most 2 decimal places",
	"transaction_type": "must be INCOME or EXPENSE",
	"budget_status":    "must be one of: ACTIVE, PAUSED, ARCHIVED",
	"year_month":       "must be a month in the format YYYY-MM",
}

// Describe turns a failed rule into the sentence shown after the field name
func Describe(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}

	param := fe.Param()
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "lt":
		return fmt.Sprintf("must be less than %s", param)
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)
	case "datetime":
		if hint, ok := layoutHints[param]; ok {
			param = hint
		}
		return fmt.Sprintf("must be a date in the format %s", param)
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}

// FieldMessages maps each offending field to its description. ok is false
// when err does not come from the validator.
func FieldMessages(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil, false
	}

	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = Describe(fe)
	}
	return messages, true
}
