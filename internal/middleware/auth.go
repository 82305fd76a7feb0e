package middleware

import (
	stderrors "errors"

	"fire-tracker/internal/errors"
	"fire-tracker/internal/handlers"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"
	"fire-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// Context keys set for authenticated requests
const (
	ContextUserID   = "user_id"
	ContextEmail    = "user_email"
	ContextRole     = "user_role"
	ContextTokenJTI = "token_jti"
)

// RequireAuth admits requests that carry a valid access token which has
// not been logged out. The caller's id, email and role are put on the
// echo context.
func RequireAuth(tokens services.TokenServiceInterface, blacklist repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			raw, err := tokens.ExtractTokenFromHeader(header)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokens.ValidateAccessToken(raw)
			switch {
			case stderrors.Is(err, services.ErrExpiredToken):
				return handlers.SendError(c, errors.AuthExpiredToken)
			case err != nil:
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := claims.UserUUID()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			revoked, err := blacklist.IsBlacklisted(claims.ID)
			if err != nil {
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextTokenJTI, claims.ID)

			return next(c)
		}
	}
}

// RequireRole admits callers whose token carries one of roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User role not found in token"))
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
