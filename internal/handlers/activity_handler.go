package handlers

import (
	stderrors "errors"
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ActivityHandler exposes the caller's own audit trail
type ActivityHandler struct {
	auditService services.AuditServiceInterface
}

func NewActivityHandler(auditService services.AuditServiceInterface) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// GetActivity
// @Summary Account activity
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or VALIDATION_007"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /activity [get]
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	start, err := parseDateParam(c, "startDate", false)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	end, err := parseDateParam(c, "endDate", true)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	offset, err := getIntParam(c, "offset", 0)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	limit, err := getIntParam(c, "limit", services.DefaultPageLimit)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	offset, limit = services.NormalizePage(offset, limit)

	logs, total, err := h.auditService.GetUserActivity(userID, start, end, offset, limit)
	if err != nil {
		if stderrors.Is(err, services.ErrAuditDateRange) {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return sendServiceError(c, err, nil, errors.ValidationGeneral, errors.ValidationGeneral)
	}

	return c.JSON(http.StatusOK, dto.ActivityResponse{
		Activities: logs,
		Total:      total,
		Offset:     offset,
		Limit:      limit,
	})
}
