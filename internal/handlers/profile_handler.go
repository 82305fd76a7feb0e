package handlers

import (
	"log/slog"
	"net/http"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler exposes the caller's FIRE profile
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
	auditService   services.AuditServiceInterface
}

func NewProfileHandler(
	profileService services.ProfileServiceInterface,
	auditService services.AuditServiceInterface,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		auditService:   auditService,
	}
}

// GetProfile returns the profile, creating it with defaults on first access
// @Summary Get FIRE profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrProfileNotFound, errors.ProfileNotFound, errors.ProfileInvalidParameter)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile changes FIRE parameters. Setting one of monthly or annual
// expenses derives the other.
// @Summary Update FIRE profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or PROFILE_002"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, changes, err := h.profileService.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return sendServiceError(c, err, repositories.ErrProfileNotFound, errors.ProfileNotFound, errors.ProfileInvalidParameter)
	}

	if len(changes) > 0 {
		if err := h.auditService.LogProfileUpdate(userID, getClientIP(c), c.Request().UserAgent(), changes); err != nil {
			slog.WarnContext(c.Request().Context(), "failed to write audit log",
				slog.String("action", models.AuditActionProfileUpdated),
				slog.String("error", err.Error()),
			)
		}
	}

	return c.JSON(http.StatusOK, profile)
}
