package handlers

import (
	"log/slog"
	"net/http"

	"fire-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey is where the request id middleware stores the trace id
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps non-resource replies such as logout or unlock
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError replies with code. Handlers report every expected failure this
// way; echo.NewHTTPError is reserved for the framework.
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendSystemError logs err and replies with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	resp, cause := errors.WrapSystemError(err, getTraceID(c))
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", resp.Error.TraceID),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
		slog.Any("error", cause))
	return c.JSON(http.StatusInternalServerError, resp)
}
