package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler serves routes that only exist when DEMO_DATA_ENABLED is on
type DevHandler struct {
	demo  services.DemoDataServiceInterface
	audit services.AuditServiceInterface
}

func NewDevHandler(demo services.DemoDataServiceInterface, audit services.AuditServiceInterface) *DevHandler {
	return &DevHandler{demo: demo, audit: audit}
}

// GenerateDemoData fills the caller's ledger with sample transactions.
// POST /api/v1/dev/demo-data?months=N, N defaults to DefaultDemoMonths.
func (h *DevHandler) GenerateDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	months, err := getIntParam(c, "months", services.DefaultDemoMonths)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	created, err := h.demo.GenerateDemoData(ctx, userID, months)
	if err != nil {
		return sendServiceError(c, err, nil, errors.ValidationOutOfRange, errors.ValidationOutOfRange)
	}

	if err := h.audit.LogDemoDataSeeded(userID, months, created, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.WarnContext(ctx, "failed to write audit log",
			slog.String("action", models.AuditActionDemoSeeded),
			slog.String("error", err.Error()))
	}

	return c.JSON(http.StatusCreated, dto.DemoDataResponse{
		Message:             fmt.Sprintf("generated %d transactions over %d months", created, months),
		Months:              months,
		TransactionsCreated: created,
	})
}
