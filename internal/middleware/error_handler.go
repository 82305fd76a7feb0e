package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fire-tracker/internal/errors"
	"fire-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// statusCodes picks the API code for errors raised by echo itself
var statusCodes = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.SystemRouteNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnsupportedMediaType:  errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

// CustomHTTPErrorHandler renders every error that reaches echo in the API
// error format. Handlers normally answer themselves through SendError; what
// arrives here is framework errors, validator failures and recovered panics.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := classify(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	slog.Log(req.Context(), level, "request error",
		"trace_id", traceID,
		"error_code", resp.Error.Code,
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err.Error(),
	)
	apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if req.Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		slog.Error("failed to write error response", "trace_id", traceID, "error", err)
	}
}

func classify(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		resp := errors.NewErrorResponse(mapHTTPStatusToErrorCode(httpErr.Code), traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)))
		return resp, httpErr.Code
	}

	if fields, ok := validation.FieldMessages(err); ok {
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	resp, _ := errors.WrapSystemError(err, traceID)
	return resp, resp.GetHTTPStatus()
}
