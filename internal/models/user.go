package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"

	DefaultMaxFailedLoginAttempts = 3
)

// User is an account owner. Every financial record hangs off a user id.
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email               string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName           string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName            string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Role                string         `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	FailedLoginAttempts int            `gorm:"default:0" json:"-"`
	LockedAt            *time.Time     `gorm:"index" json:"locked_at,omitempty"`
	LastLoginAt         *time.Time     `gorm:"index" json:"last_login_at,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	AuditLogs     []AuditLog     `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) TableName() string {
	return "users"
}

// NormalizeEmail is the canonical form emails are stored and looked up in
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)

	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// column updates through a map carry no full row to validate
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !validEmail(u.Email) {
		return errors.New("invalid email format")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return errors.New("first name is required")
	}
	if strings.TrimSpace(u.LastName) == "" {
		return errors.New("last name is required")
	}
	if u.Role != RoleMember && u.Role != RoleAdmin {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	return nil
}

// validEmail accepts a bare address whose domain has at least one dot
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

func (u *User) IsLocked() bool {
	return u.LockedAt != nil
}

// RegisterFailedLogin counts a wrong password at t. It returns true when
// this attempt is the one that locks the account. A limit below one falls
// back to DefaultMaxFailedLoginAttempts.
func (u *User) RegisterFailedLogin(at time.Time, maxAttempts int) bool {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxFailedLoginAttempts
	}

	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts && u.LockedAt == nil {
		u.LockedAt = &at
		return true
	}
	return false
}

// RegisterSuccessfulLogin clears the failure counter and stamps the login
func (u *User) RegisterSuccessfulLogin(at time.Time) {
	u.FailedLoginAttempts = 0
	u.LastLoginAt = &at
}

// Unlock lifts a lockout; used by administrators
func (u *User) Unlock() {
	u.LockedAt = nil
	u.FailedLoginAttempts = 0
}
