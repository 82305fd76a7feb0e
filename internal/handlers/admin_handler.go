package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles admin-related endpoints
type AdminHandler struct {
	userRepo           repositories.UserRepositoryInterface
	auditService       services.AuditServiceInterface
	maintenanceService services.MaintenanceServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userRepo repositories.UserRepositoryInterface,
	auditService services.AuditServiceInterface,
	maintenanceService services.MaintenanceServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		userRepo:           userRepo,
		auditService:       auditService,
		maintenanceService: maintenanceService,
	}
}

// UnlockUser clears the failed login counter of a locked account
// @Summary Unlock user account (admin)
// @Description Admin endpoint to unlock a user locked out after repeated failed logins
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse} "User unlocked successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid user ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 404 {object} errors.ErrorResponse "SYSTEM_007 - User not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/users/{userId}/unlock [post]
func (h *AdminHandler) UnlockUser(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("User ID must be a valid UUID"))
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.SystemRouteNotFound, errors.WithMessage("User not found"))
		}
		return SendSystemError(c, err)
	}

	if err := h.userRepo.ResetFailedLoginAttempts(userID); err != nil {
		return SendSystemError(c, err)
	}
	user.Unlock()

	h.createAuditLog(c, adminID, models.AuditActionUnlocked, models.AuditResourceAuth, user.ID.String(), nil)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "User account unlocked successfully",
		Data:    dto.NewUserResponse(user),
	})
}

// RunMaintenance runs one cleanup pass immediately
// @Summary Run maintenance (admin)
// @Description Purges expired refresh tokens, revoked tokens past their TTL, expired blacklist entries and old audit logs
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MaintenanceReport
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - One or more cleanup steps failed"
// @Router /admin/maintenance/run [post]
func (h *AdminHandler) RunMaintenance(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, err := h.maintenanceService.RunOnce(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	h.createAuditLog(c, adminID, models.AuditActionMaintenanceRun, models.AuditResourceSystem, "maintenance", map[string]interface{}{
		"refresh_tokens":     report.ExpiredRefreshTokens + report.RevokedRefreshTokens,
		"blacklisted_tokens": report.ExpiredBlacklistEntries,
		"audit_logs":         report.AuditLogsPurged,
	})

	return c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) createAuditLog(c echo.Context, adminID uuid.UUID, action, resource, resourceID string, metadata models.AuditMetadata) {
	log := &models.AuditLog{
		UserID:     &adminID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  getClientIP(c),
		UserAgent:  c.Request().UserAgent(),
		Metadata:   metadata,
	}

	if err := h.auditService.CreateAuditLog(log); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to write audit log",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}
