package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panicking handler into an error for the HTTP
// error handler, which answers SYSTEM_001. The stack is logged with the
// trace id; the panic value never reaches the client.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				req := c.Request()
				slog.ErrorContext(req.Context(), "handler panicked",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack", string(debug.Stack()),
				)
				err = fmt.Errorf("recovered panic: %v", r)
			}()

			return next(c)
		}
	}
}
