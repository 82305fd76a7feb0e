package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthEmailAlreadyExists     ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed ErrorCode = "TRANSACTION_003"
	TransactionInvalidType      ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound         ErrorCode = "BUDGET_001"
	BudgetValidationFailed ErrorCode = "BUDGET_002"
	BudgetInvalidStatus    ErrorCode = "BUDGET_003"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound         ErrorCode = "PROFILE_001"
	ProfileInvalidParameter ErrorCode = "PROFILE_002"
)

// Net worth error codes (NETWORTH_*)
const (
	NetWorthNotFound         ErrorCode = "NETWORTH_001"
	NetWorthValidationFailed ErrorCode = "NETWORTH_002"
)

// FIRE calculation error codes (FIRE_*)
const (
	FireUndefinedTarget ErrorCode = "FIRE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeSpec struct {
	status  int
	message string
}

// registry holds the HTTP status and default message of every code
var registry = map[ErrorCode]codeSpec{
	AuthInvalidCredentials:     {http.StatusUnauthorized, "Invalid email or password"},
	AuthMissingToken:           {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:           {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat:     {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInsufficientPermission: {http.StatusForbidden, "Insufficient permissions to access this resource"},
	AuthAccountLocked:          {http.StatusForbidden, "Account is locked or disabled"},
	AuthEmailAlreadyExists:     {http.StatusConflict, "An account with this email already exists"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidEmail:  {http.StatusBadRequest, "Invalid email address format"},
	ValidationInvalidID:     {http.StatusBadRequest, "Invalid identifier format"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or range"},

	TransactionNotFound:         {http.StatusNotFound, "Transaction not found"},
	TransactionInvalidAmount:    {http.StatusBadRequest, "Invalid transaction amount"},
	TransactionValidationFailed: {http.StatusUnprocessableEntity, "Transaction validation failed"},
	TransactionInvalidType:      {http.StatusBadRequest, "Invalid transaction type"},

	BudgetNotFound:         {http.StatusNotFound, "Budget not found"},
	BudgetValidationFailed: {http.StatusUnprocessableEntity, "Budget validation failed"},
	BudgetInvalidStatus:    {http.StatusBadRequest, "Invalid budget status"},

	ProfileNotFound:         {http.StatusNotFound, "Profile not found"},
	ProfileInvalidParameter: {http.StatusBadRequest, "Profile parameters are out of range"},

	NetWorthNotFound:         {http.StatusNotFound, "Net worth snapshot not found"},
	NetWorthValidationFailed: {http.StatusUnprocessableEntity, "Net worth snapshot validation failed"},

	FireUndefinedTarget: {http.StatusUnprocessableEntity, "FIRE target is undefined for a zero safe withdrawal rate"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "The requested endpoint does not exist"},
}

// GetErrorMessage returns the default message of code
func GetErrorMessage(code ErrorCode) string {
	if spec, ok := registry[code]; ok {
		return spec.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the status code responses with code are sent with.
// Unknown codes are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if spec, ok := registry[code]; ok {
		return spec.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
