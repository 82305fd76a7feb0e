package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"fire-tracker/internal/config"
	"fire-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService signs and verifies the RS256 session tokens
type TokenService struct {
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	now        func() time.Time
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		issuer:     jwtConfig.Issuer,
		audience:   jwtConfig.Audience,
		accessTTL:  jwtConfig.AccessTokenDuration,
		refreshTTL: jwtConfig.RefreshTokenDuration,
		privateKey: jwtConfig.PrivateKey,
		publicKey:  jwtConfig.PublicKey,
		now:        time.Now,
	}
}

// GenerateAccessToken issues a short lived token carrying the user's role
func (ts *TokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	claims := models.SessionClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      user.Role,
		TokenType: models.TokenTypeAccess,
	}
	return ts.sign(claims, ts.accessTTL)
}

// GenerateRefreshToken issues the long lived token used to rotate sessions
func (ts *TokenService) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be nil")
	}

	claims := models.SessionClaims{
		UserID:    userID.String(),
		TokenType: models.TokenTypeRefresh,
	}
	return ts.sign(claims, ts.refreshTTL)
}

func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.SessionClaims, error) {
	return ts.verify(tokenString, models.TokenTypeAccess)
}

func (ts *TokenService) ValidateRefreshToken(tokenString string) (*models.SessionClaims, error) {
	return ts.verify(tokenString, models.TokenTypeRefresh)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header.
// The scheme is matched case-insensitively.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// ParseUnverified reads the claims without checking the signature or the
// expiry. Only use the result for bookkeeping such as logout.
func (ts *TokenService) ParseUnverified(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.SessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (ts *TokenService) sign(claims models.SessionClaims, ttl time.Duration) (string, time.Time, error) {
	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    ts.issuer,
		Subject:   claims.UserID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	if ts.audience != "" {
		claims.Audience = jwt.ClaimStrings{ts.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) parser() *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(ts.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ts.now),
	}
	if ts.audience != "" {
		opts = append(opts, jwt.WithAudience(ts.audience))
	}
	return jwt.NewParser(opts...)
}

func (ts *TokenService) verify(tokenString, expectedType string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.SessionClaims{}
	_, err := ts.parser().ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.publicKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.TokenType != expectedType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}
