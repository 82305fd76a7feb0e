package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fire-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler serves /health and /metrics
type HealthCheckHandler struct {
	db      *gorm.DB
	metrics http.Handler
}

func NewHealthCheckHandler(db *gorm.DB, gatherer prometheus.Gatherer) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:      db,
		metrics: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}
}

// HealthCheck pings the database
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,database=string,time=string}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		slog.WarnContext(c.Request().Context(), "health check failed", slog.String("error", err.Error()))
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "up",
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Metrics serves the Prometheus exposition of the configured gatherer
// @Summary Prometheus metrics
// @Tags Health
// @Produce plain
// @Router /metrics [get]
func (h *HealthCheckHandler) Metrics(c echo.Context) error {
	h.metrics.ServeHTTP(c.Response(), c.Request())
	return nil
}
