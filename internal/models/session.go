package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrMissingSubject = errors.New("token carries no user id")

// SessionClaims is the JWT payload of both access and refresh tokens.
// Email and Role are only set on access tokens.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// UserUUID parses the user id carried by the token
func (c *SessionClaims) UserUUID() (uuid.UUID, error) {
	if c.UserID == "" {
		return uuid.Nil, ErrMissingSubject
	}
	return uuid.Parse(c.UserID)
}

// Expiry returns the exp claim, or the zero time when absent
func (c *SessionClaims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// RefreshToken is the server side record of an issued refresh token. Only
// the SHA-256 hash of the token is stored. A rotated token points at its
// successor through ReplacedByID.
type RefreshToken struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash    string     `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	IPAddress    string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent    string     `gorm:"type:text" json:"user_agent,omitempty"`
	ExpiresAt    time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt    *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	ReplacedByID *uuid.UUID `gorm:"type:uuid" json:"replaced_by_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (rt *RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now().UTC()
	}
	return nil
}

// UsableAt reports whether the token can still be exchanged at t
func (rt *RefreshToken) UsableAt(t time.Time) bool {
	return rt.RevokedAt == nil && t.Before(rt.ExpiresAt)
}

// WasRotated reports whether the token has already been exchanged for a
// successor. Presenting such a token again means it leaked.
func (rt *RefreshToken) WasRotated() bool {
	return rt.RevokedAt != nil && rt.ReplacedByID != nil
}

// RevokeAt marks the token revoked at t. Revoking twice keeps the first time.
func (rt *RefreshToken) RevokeAt(t time.Time) {
	if rt.RevokedAt != nil {
		return
	}
	rt.RevokedAt = &t
}

// BlacklistedToken holds the JTI of an access token that was logged out
// before it expired. Rows are useless once ExpiresAt has passed.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (bt *BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now().UTC()
	}
	return nil
}

// ExpiredAt reports whether the blacklisted token had expired by t
func (bt *BlacklistedToken) ExpiredAt(t time.Time) bool {
	return !t.Before(bt.ExpiresAt)
}
