package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/services"
	"fire-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	auth      *service_mocks.MockAuthServiceInterface
	passwords *service_mocks.MockPasswordServiceInterface
	audit     *service_mocks.MockAuditServiceInterface
	handler   *AuthHandler
	e         *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.reset()
}

// reset gives a subtest its own controller and mocks
func (s *AuthHandlerSuite) reset() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.passwords = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.auth, s.passwords, s.audit)
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) tokens() *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:  "access." + gofakeit.LetterN(12),
		RefreshToken: "refresh." + gofakeit.LetterN(12),
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
}

func (s *AuthHandlerSuite) logoutRequest(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) TestRegister() {
	body := map[string]string{
		"email":      "Saver@Example.com",
		"password":   "Coast-FIRE-2045",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	}

	s.Run("created", func() {
		s.reset()
		user := &models.User{ID: uuid.New(), Email: "saver@example.com", FirstName: "Ada", LastName: "Lovelace",
			Role: models.RoleMember, CreatedAt: time.Now()}
		s.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(req *dto.RegisterRequest, _, _ string) (*models.User, error) {
				s.Equal("Ada", req.FirstName)
				s.Equal("Lovelace", req.LastName)
				return user, nil
			})

		c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)
		s.Require().NoError(s.handler.Register(c))

		s.Equal(http.StatusCreated, rec.Code)
		var resp struct {
			Data    dto.UserResponse `json:"data"`
			Message string           `json:"message"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(user.ID, resp.Data.ID)
		s.Equal("saver@example.com", resp.Data.Email)
		s.Equal(models.RoleMember, resp.Data.Role)
		s.NotContains(rec.Body.String(), "password")
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"email taken", fmt.Errorf("register: %w", services.ErrUserAlreadyExists), http.StatusConflict, "AUTH_007"},
		{"weak password", fmt.Errorf("failed to hash password: %w", services.ErrWeakPassword), http.StatusBadRequest, "VALIDATION_001"},
		{"storage down", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}
	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.reset()
			s.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", body)
			s.Require().NoError(s.handler.Register(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeErrorCode(rec))
		})
	}

	s.Run("malformed json", func() {
		s.reset()
		c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", "{not json")

		s.Require().NoError(s.handler.Register(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", decodeErrorCode(rec))
	})

	s.Run("missing names are left to the error handler", func() {
		s.reset()
		c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", map[string]string{
			"email":    "saver@example.com",
			"password": "Coast-FIRE-2045",
		})

		s.Error(s.handler.Register(c))
	})
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("returns the token pair", func() {
		s.reset()
		email := gofakeit.Email()
		pair := s.tokens()
		s.auth.EXPECT().Login(gomock.Any(), "203.0.113.9", gomock.Any()).
			DoAndReturn(func(req *dto.LoginRequest, _, _ string) (*dto.TokenResponse, error) {
				s.Equal(email, req.Email)
				return pair, nil
			})

		c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    email,
			"password": "Coast-FIRE-2045",
		})
		c.Request().Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		s.Require().NoError(s.handler.Login(c))

		s.Equal(http.StatusOK, rec.Code)
		var body map[string]interface{}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(pair.AccessToken, body["access_token"])
		s.Equal(pair.RefreshToken, body["refresh_token"])
		s.Equal("Bearer", body["token_type"])
		s.Contains(body, "expires_at")
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"locked", services.ErrAccountLocked, http.StatusForbidden, "AUTH_006"},
		{"storage down", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}
	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.reset()
			s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login", map[string]string{
				"email":    "saver@example.com",
				"password": "nope",
			})
			s.Require().NoError(s.handler.Login(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeErrorCode(rec))
		})
	}
}

func (s *AuthHandlerSuite) TestRefreshToken() {
	s.Run("rotates", func() {
		s.reset()
		pair := s.tokens()
		s.auth.EXPECT().RefreshTokens("old.refresh.token", gomock.Any(), gomock.Any()).Return(pair, nil)

		c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "old.refresh.token"})
		s.Require().NoError(s.handler.RefreshToken(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), pair.RefreshToken)
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"rejected token", services.ErrInvalidRefreshToken, http.StatusUnauthorized, "AUTH_004"},
		{"locked", services.ErrAccountLocked, http.StatusForbidden, "AUTH_006"},
	}
	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.reset()
			s.auth.EXPECT().RefreshTokens(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "a.b.c"})
			s.Require().NoError(s.handler.RefreshToken(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeErrorCode(rec))
		})
	}

	s.Run("missing token", func() {
		s.reset()
		c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/refresh", map[string]string{})

		s.Error(s.handler.RefreshToken(c))
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("revokes", func() {
		s.reset()
		s.auth.EXPECT().Logout("access.jwt", gomock.Any(), gomock.Any()).Return(nil)

		c, rec := s.logoutRequest("bearer access.jwt")
		s.Require().NoError(s.handler.Logout(c))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Logout successful")
	})

	s.Run("cleanup failure still logs out", func() {
		s.reset()
		s.auth.EXPECT().Logout("access.jwt", gomock.Any(), gomock.Any()).Return(errors.New("blacklist unavailable"))

		c, rec := s.logoutRequest("Bearer access.jwt")
		s.Require().NoError(s.handler.Logout(c))

		s.Equal(http.StatusOK, rec.Code)
	})

	headers := []struct {
		name   string
		header string
		code   string
	}{
		{"no header", "", "AUTH_002"},
		{"no scheme", "access.jwt", "AUTH_004"},
		{"basic auth", "Basic c2F2ZXI6cHc=", "AUTH_004"},
		{"empty token", "Bearer ", "AUTH_004"},
	}
	for _, tc := range headers {
		s.Run(tc.name, func() {
			s.reset()
			c, rec := s.logoutRequest(tc.header)
			s.Require().NoError(s.handler.Logout(c))

			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(tc.code, decodeErrorCode(rec))
		})
	}
}

func (s *AuthHandlerSuite) TestChangePassword() {
	body := map[string]string{
		"current_password": "Coast-FIRE-2045",
		"new_password":     "Lean-FIRE-2040",
	}

	s.Run("updated and audited", func() {
		s.reset()
		userID := uuid.New()
		s.passwords.EXPECT().UpdatePassword(userID, "Coast-FIRE-2045", "Lean-FIRE-2040").Return(nil)
		s.audit.EXPECT().LogPasswordUpdate(userID, gomock.Any(), gomock.Any()).Return(nil)

		c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/auth/password", body)
		s.Require().NoError(s.handler.ChangePassword(withUser(c, userID)))

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Password updated successfully")
	})

	s.Run("audit failure is tolerated", func() {
		s.reset()
		userID := uuid.New()
		s.passwords.EXPECT().UpdatePassword(userID, gomock.Any(), gomock.Any()).Return(nil)
		s.audit.EXPECT().LogPasswordUpdate(userID, gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

		c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/auth/password", body)
		s.Require().NoError(s.handler.ChangePassword(withUser(c, userID)))

		s.Equal(http.StatusOK, rec.Code)
	})

	failures := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"wrong current password", services.ErrCurrentPasswordWrong, http.StatusUnauthorized, "AUTH_001"},
		{"unchanged", services.ErrSamePassword, http.StatusBadRequest, "VALIDATION_001"},
		{"policy", fmt.Errorf("%w: must contain a number", services.ErrWeakPassword), http.StatusBadRequest, "VALIDATION_001"},
		{"user gone", services.ErrUserNotFound, http.StatusUnauthorized, "AUTH_002"},
		{"storage down", errors.New("db down"), http.StatusInternalServerError, "SYSTEM_001"},
	}
	for _, tc := range failures {
		s.Run(tc.name, func() {
			s.reset()
			userID := uuid.New()
			s.passwords.EXPECT().UpdatePassword(userID, gomock.Any(), gomock.Any()).Return(tc.err)

			c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/auth/password", body)
			s.Require().NoError(s.handler.ChangePassword(withUser(c, userID)))

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeErrorCode(rec))
		})
	}

	s.Run("anonymous", func() {
		s.reset()
		c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/auth/password", body)

		s.Require().NoError(s.handler.ChangePassword(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("short new password", func() {
		s.reset()
		c, _ := newJSONContext(s.e, http.MethodPut, "/api/v1/auth/password", map[string]string{
			"current_password": "Coast-FIRE-2045",
			"new_password":     "short",
		})

		s.Error(s.handler.ChangePassword(withUser(c, uuid.New())))
	})
}
