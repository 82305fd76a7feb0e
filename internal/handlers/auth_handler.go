package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/errors"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves /auth: registration, sessions and password changes
type AuthHandler struct {
	authService     services.AuthServiceInterface
	passwordService services.PasswordServiceInterface
	auditService    services.AuditServiceInterface
}

func NewAuthHandler(
	authService services.AuthServiceInterface,
	passwordService services.PasswordServiceInterface,
	auditService services.AuditServiceInterface,
) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		passwordService: passwordService,
		auditService:    auditService,
	}
}

// sendAuthError answers with the API code of a known auth failure and falls
// back to SYSTEM_001 for anything else
func sendAuthError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrUserAlreadyExists):
		return SendError(c, errors.AuthEmailAlreadyExists)
	case stderrors.Is(err, services.ErrInvalidCredentials),
		stderrors.Is(err, services.ErrCurrentPasswordWrong):
		return SendError(c, errors.AuthInvalidCredentials)
	case stderrors.Is(err, services.ErrAccountLocked):
		return SendError(c, errors.AuthAccountLocked)
	case stderrors.Is(err, services.ErrInvalidRefreshToken):
		return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid or expired refresh token"))
	case stderrors.Is(err, services.ErrUserNotFound):
		return SendError(c, errors.AuthMissingToken)
	case stderrors.Is(err, services.ErrWeakPassword),
		stderrors.Is(err, services.ErrSamePassword):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}

// Register creates an account and its default FIRE profile
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "AUTH_007"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendAuthError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewUserResponse(user),
		Message: "User registered successfully",
	})
}

// Login exchanges credentials for an access and refresh token pair
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendAuthError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates a refresh token
// @Summary Refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_004"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendAuthError(c, err)
	}
	return c.JSON(http.StatusOK, tokens)
}

// Logout revokes the presented access token and every refresh session
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 or AUTH_004"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return SendError(c, errors.AuthMissingToken)
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	// the client is logged out either way
	if err := h.authService.Logout(token, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.ErrorContext(c.Request().Context(), "logout cleanup incomplete",
			slog.String("error", err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logout successful"})
}

// ChangePassword updates the caller's password after checking the current one
// @Summary Change password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.passwordService.UpdatePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		return sendAuthError(c, err)
	}

	if err := h.auditService.LogPasswordUpdate(userID, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to write audit log",
			slog.String("action", models.AuditActionPasswordUpdate),
			slog.String("error", err.Error()),
		)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Password updated successfully"})
}
