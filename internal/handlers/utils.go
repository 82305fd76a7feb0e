package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fire-tracker/internal/dto"
	apierrors "fire-tracker/internal/errors"
	"fire-tracker/internal/finance"
	"fire-tracker/internal/services"
	"fire-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// NewValidator is the echo validator behind c.Validate
func NewValidator() echo.Validator {
	return validation.GetValidator()
}

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}

	return value, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

// parseIDParam reads a UUID path parameter
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. With endOfDay
// set the result is the last instant of that day.
func parseDateParam(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, use YYYY-MM-DD", name)
	}

	if endOfDay {
		date = date.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &date, nil
}

// parsePeriod resolves the reporting period of a request. month=YYYY-MM
// selects a calendar month (default: the current one); startDate and endDate
// override its bounds.
func parsePeriod(c echo.Context, now time.Time) (finance.Period, error) {
	period := finance.MonthOf(now.UTC())

	if month := c.QueryParam("month"); month != "" {
		if !validation.IsYearMonth(month) {
			return finance.Period{}, fmt.Errorf("invalid month format, use YYYY-MM")
		}
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return finance.Period{}, fmt.Errorf("invalid month format, use YYYY-MM")
		}
		period = finance.MonthOf(start)
	}

	start, err := parseDateParam(c, "startDate", false)
	if err != nil {
		return finance.Period{}, err
	}
	end, err := parseDateParam(c, "endDate", true)
	if err != nil {
		return finance.Period{}, err
	}

	if start != nil {
		period.Start = *start
	}
	if end != nil {
		period.End = *end
	}

	if _, err := finance.NewPeriod(period.Start, period.End); err != nil {
		return finance.Period{}, fmt.Errorf("startDate must not be after endDate")
	}

	return period, nil
}

// parseDecimalParam reads an optional decimal query parameter
func parseDecimalParam(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	return &value, nil
}

// validationDetail drops the generic prefix from a service validation error
func validationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), services.ErrValidation.Error()+": ")
}

// sendServiceError maps common service failures onto API error codes.
// Anything unrecognised becomes a system error.
func sendServiceError(c echo.Context, err error, notFound error, notFoundCode, invalidCode apierrors.ErrorCode) error {
	switch {
	case notFound != nil && errors.Is(err, notFound):
		return SendError(c, notFoundCode)
	case errors.Is(err, services.ErrValidation):
		return SendError(c, invalidCode, apierrors.WithDetails(validationDetail(err)))
	case errors.Is(err, finance.ErrMalformedPeriod):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidUserID):
		return SendError(c, apierrors.AuthMissingToken)
	default:
		return SendSystemError(c, err)
	}
}

// recordChange writes an audit row for a write request. Failures are logged
// and never fail the request.
func recordChange(c echo.Context, audit services.AuditServiceInterface, userID uuid.UUID, action, resource, resourceID string, metadata map[string]interface{}) {
	if audit == nil {
		return
	}

	if err := audit.LogResourceChange(userID, action, resource, resourceID, getClientIP(c), c.Request().UserAgent(), metadata); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to write audit log",
			slog.String("action", action),
			slog.String("resource", resource),
			slog.String("error", err.Error()),
		)
	}
}
