package handlers

import (
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// NetWorthHandler handles net worth snapshots
type NetWorthHandler struct {
	netWorthService services.NetWorthServiceInterface
	auditService    services.AuditServiceInterface
}

func NewNetWorthHandler(
	netWorthService services.NetWorthServiceInterface,
	auditService services.AuditServiceInterface,
) *NetWorthHandler {
	return &NetWorthHandler{
		netWorthService: netWorthService,
		auditService:    auditService,
	}
}

// RecordSnapshot
// @Summary Record net worth
// @Description Net worth is computed as assets minus liabilities and may be negative
// @Tags NetWorth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateNetWorthSnapshotRequest true "Snapshot"
// @Success 201 {object} models.NetWorthSnapshot
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or NETWORTH_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /net-worth [post]
func (h *NetWorthHandler) RecordSnapshot(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateNetWorthSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	snapshot, err := h.netWorthService.RecordSnapshot(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err, nil, errors.NetWorthNotFound, errors.NetWorthValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionCreate, models.AuditResourceNetWorth, snapshot.ID.String(), map[string]interface{}{
		"net_worth": snapshot.NetWorth.StringFixed(2),
	})

	return c.JSON(http.StatusCreated, snapshot)
}

// ListSnapshots returns the net worth history, oldest first
// @Summary Net worth history
// @Tags NetWorth
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.NetWorthHistoryResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 or NETWORTH_002"
// @Router /net-worth [get]
func (h *NetWorthHandler) ListSnapshots(c echo.Context) error {
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

	snapshots, err := h.netWorthService.ListSnapshots(c.Request().Context(), userID, start, end)
	if err != nil {
		return sendServiceError(c, err, nil, errors.NetWorthNotFound, errors.NetWorthValidationFailed)
	}

	return c.JSON(http.StatusOK, dto.NetWorthHistoryResponse{
		Snapshots: snapshots,
		Count:     len(snapshots),
	})
}

// GetLatestSnapshot
// @Summary Latest net worth
// @Tags NetWorth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.NetWorthSnapshot
// @Failure 404 {object} errors.ErrorResponse "NETWORTH_001"
// @Router /net-worth/latest [get]
func (h *NetWorthHandler) GetLatestSnapshot(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshot, err := h.netWorthService.GetLatestSnapshot(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrNetWorthSnapshotNotFound, errors.NetWorthNotFound, errors.NetWorthValidationFailed)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// DeleteSnapshot
// @Summary Delete net worth snapshot
// @Tags NetWorth
// @Security BearerAuth
// @Param id path string true "Snapshot ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "NETWORTH_001"
// @Router /net-worth/{id} [delete]
func (h *NetWorthHandler) DeleteSnapshot(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshotID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.netWorthService.DeleteSnapshot(c.Request().Context(), userID, snapshotID); err != nil {
		return sendServiceError(c, err, repositories.ErrNetWorthSnapshotNotFound, errors.NetWorthNotFound, errors.NetWorthValidationFailed)
	}

	recordChange(c, h.auditService, userID, models.AuditActionDelete, models.AuditResourceNetWorth, snapshotID.String(), nil)

	return c.NoContent(http.StatusNoContent)
}
