package middleware

import (
	"github.com/labstack/echo/v4"
)

// responseHeaders go on every API response. The API serves JSON only, and
// finance data must stay out of browser and proxy caches.
var responseHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders sets responseHeaders before the handler runs, so error
// responses carry them too. HSTS is opt-in because local runs use plain HTTP.
func SecurityHeaders(enableHSTS bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, kv := range responseHeaders {
				h.Set(kv[0], kv[1])
			}
			if enableHSTS {
				h.Set("Strict-Transport-Security", hstsValue)
			}
			return next(c)
		}
	}
}
