package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthServiceDeps collects the collaborators of the authentication service
type AuthServiceDeps struct {
	Users     repositories.UserRepositoryInterface
	Sessions  repositories.RefreshTokenRepositoryInterface
	Blacklist repositories.BlacklistedTokenRepositoryInterface
	AuditLogs repositories.AuditLogRepositoryInterface
	Passwords PasswordServiceInterface
	Tokens    TokenServiceInterface
	Profiles  ProfileServiceInterface
	Metrics   MetricsRecorderInterface
	Logger    *slog.Logger

	// MaxFailedAttempts is the number of wrong passwords that lock an account
	MaxFailedAttempts int
}

// AuthService owns registration, login and the refresh token chain
type AuthService struct {
	deps AuthServiceDeps
	now  func() time.Time
}

func NewAuthService(deps AuthServiceDeps) AuthServiceInterface {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &AuthService{deps: deps, now: time.Now}
}

// requestMeta is the caller context copied onto audit rows and sessions
type requestMeta struct {
	ip        string
	userAgent string
}

// Register creates a member account and its default FIRE profile
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	meta := requestMeta{ipAddress, userAgent}
	email := models.NormalizeEmail(req.Email)

	hash, err := s.deps.Passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleMember,
	}

	if err := s.deps.Users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			s.audit(nil, models.AuditActionRegister, "", meta, map[string]interface{}{
				"email":  email,
				"reason": "email_already_exists",
			})
			s.event("register_conflict")
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// the profile is also created lazily on first read, so a failure here
	// does not undo the registration
	if _, err := s.deps.Profiles.CreateDefaultProfile(user.ID); err != nil {
		s.deps.Logger.Warn("default profile not created",
			"user_id", user.ID,
			"error", err)
	}

	s.audit(&user.ID, models.AuditActionRegister, user.ID.String(), meta, nil)
	s.event("register")
	return user, nil
}

// Login checks the credentials and opens a new session
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	meta := requestMeta{ipAddress, userAgent}
	email := models.NormalizeEmail(req.Email)

	user, err := s.deps.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.failedLogin(nil, email, "user_not_found", meta)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.failedLogin(&user.ID, email, "account_locked", meta)
		return nil, ErrAccountLocked
	}

	now := s.now().UTC()
	if !s.deps.Passwords.ComparePassword(req.Password, user.PasswordHash) {
		locked := user.RegisterFailedLogin(now, s.deps.MaxFailedAttempts)
		if err := s.deps.Users.SaveLoginState(user); err != nil {
			s.deps.Logger.Error("failed to record failed login",
				"user_id", user.ID,
				"error", err)
		}
		if locked {
			s.audit(&user.ID, models.AuditActionAccountLocked, user.ID.String(), meta, map[string]interface{}{
				"failed_attempts": user.FailedLoginAttempts,
			})
			s.event("account_locked")
		}
		s.failedLogin(&user.ID, email, "invalid_password", meta)
		return nil, ErrInvalidCredentials
	}

	user.RegisterSuccessfulLogin(now)
	if err := s.deps.Users.SaveLoginState(user); err != nil {
		s.deps.Logger.Warn("failed to record login",
			"user_id", user.ID,
			"error", err)
	}

	tokens, session, err := s.issue(user, meta)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	s.audit(&user.ID, models.AuditActionLogin, user.ID.String(), meta, nil)
	s.event("login")
	return tokens, nil
}

// RefreshTokens trades a refresh token for a new pair. Each refresh token
// is single use: presenting one that was already rotated revokes every
// session the user holds.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	meta := requestMeta{ipAddress, userAgent}

	claims, err := s.deps.Tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, s.refreshRejected(nil, "invalid_token", meta)
	}
	userID, err := claims.UserUUID()
	if err != nil {
		return nil, s.refreshRejected(nil, "invalid_subject", meta)
	}

	current, err := s.deps.Sessions.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, s.refreshRejected(&userID, "token_not_found", meta)
		}
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}
	if current.UserID != userID {
		return nil, s.refreshRejected(&userID, "subject_mismatch", meta)
	}

	if current.WasRotated() {
		s.revokeAfterReuse(current, meta)
		return nil, ErrInvalidRefreshToken
	}
	if !current.UsableAt(s.now()) {
		return nil, s.refreshRejected(&userID, "token_expired_or_revoked", meta)
	}

	user, err := s.deps.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, s.refreshRejected(&userID, "user_not_found", meta)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.IsLocked() {
		s.refreshRejected(&userID, "account_locked", meta)
		return nil, ErrAccountLocked
	}

	tokens, next, err := s.issue(user, meta)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Sessions.Rotate(current, next); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenRaced) {
			return nil, s.refreshRejected(&userID, "concurrent_rotation", meta)
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	s.audit(&user.ID, models.AuditActionTokenRefresh, user.ID.String(), meta, nil)
	s.event("token_refresh")
	return tokens, nil
}

// Logout blacklists the access token until it expires and closes every
// refresh session of its owner. Tokens that fail validation are ignored.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.deps.Tokens.ValidateAccessToken(accessToken)
	if err != nil {
		s.deps.Logger.Debug("logout with unusable token", "error", err)
		return nil
	}
	userID, err := claims.UserUUID()
	if err != nil {
		return nil
	}

	var errs []error
	if claims.ID != "" {
		entry := &models.BlacklistedToken{
			JTI:       claims.ID,
			UserID:    userID,
			ExpiresAt: claims.Expiry(),
		}
		if err := s.deps.Blacklist.Create(entry); err != nil {
			errs = append(errs, fmt.Errorf("blacklist access token: %w", err))
		}
	}
	if _, err := s.deps.Sessions.RevokeAllForUser(userID); err != nil {
		errs = append(errs, fmt.Errorf("revoke refresh tokens: %w", err))
	}

	s.audit(&userID, models.AuditActionLogout, userID.String(), requestMeta{ipAddress, userAgent}, nil)
	s.event("logout")
	return errors.Join(errs...)
}

// issue signs a new token pair and returns the session row for the refresh half
func (s *AuthService) issue(user *models.User, meta requestMeta) (*dto.TokenResponse, *models.RefreshToken, error) {
	access, accessExpiry, err := s.deps.Tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, refreshExpiry, err := s.deps.Tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		IPAddress: meta.ip,
		UserAgent: meta.userAgent,
		ExpiresAt: refreshExpiry,
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    accessExpiry,
	}, session, nil
}

func (s *AuthService) revokeAfterReuse(token *models.RefreshToken, meta requestMeta) {
	revoked, err := s.deps.Sessions.RevokeAllForUser(token.UserID)
	if err != nil {
		s.deps.Logger.Error("failed to revoke sessions after refresh token reuse",
			"user_id", token.UserID,
			"error", err)
	}
	s.deps.Logger.Warn("refresh token reuse detected",
		"user_id", token.UserID,
		"token_id", token.ID,
		"sessions_revoked", revoked)
	s.audit(&token.UserID, models.AuditActionTokenReuse, token.ID.String(), meta, map[string]interface{}{
		"sessions_revoked": revoked,
	})
	s.event("refresh_token_reuse")
}

func (s *AuthService) refreshRejected(userID *uuid.UUID, reason string, meta requestMeta) error {
	s.audit(userID, models.AuditActionTokenRefresh, "", meta, map[string]interface{}{"reason": reason})
	s.event("token_refresh_rejected")
	return ErrInvalidRefreshToken
}

func (s *AuthService) failedLogin(userID *uuid.UUID, email, reason string, meta requestMeta) {
	s.audit(userID, models.AuditActionFailedLogin, "", meta, map[string]interface{}{
		"email":  email,
		"reason": reason,
	})
	s.event("login_failed")
}

func (s *AuthService) event(kind string) {
	if s.deps.Metrics == nil {
		return
	}
	s.deps.Metrics.IncrementCounter("authentication_event", map[string]string{"event_type": kind})
}

// audit writes an auth row. A failed write is logged and never fails the caller.
func (s *AuthService) audit(userID *uuid.UUID, action, resourceID string, meta requestMeta, metadata map[string]interface{}) {
	entry := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   models.AuditResourceAuth,
		ResourceID: resourceID,
		IPAddress:  meta.ip,
		UserAgent:  meta.userAgent,
		Metadata:   metadata,
	}
	if err := s.deps.AuditLogs.Create(entry); err != nil {
		s.deps.Logger.Error("failed to write audit log",
			"action", action,
			"error", err)
	}
}

// hashToken is the lookup key stored for a refresh token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
