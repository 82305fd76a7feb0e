package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBCryptCost = 12
	MinPasswordLength = 12

	// bcrypt ignores everything after 72 bytes
	MaxPasswordLength = 72
)

var (
	// ErrWeakPassword wraps every password policy violation
	ErrWeakPassword         = errors.New("password does not meet the policy")
	ErrCurrentPasswordWrong = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must be different from current password")
	ErrUserNotFound         = errors.New("user not found")
)

const specialCharacters = `!@#$%^&*()_+-=[]{}|;:,.<>?`

// PasswordPolicy configures hashing cost and complexity rules
type PasswordPolicy struct {
	BCryptCost          int
	MinLength           int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
}

type characterRule struct {
	required func(PasswordPolicy) bool
	matches  func(rune) bool
	message  string
}

var characterRules = []characterRule{
	{
		required: func(p PasswordPolicy) bool { return p.RequireUppercase },
		matches:  unicode.IsUpper,
		message:  "must contain an uppercase letter",
	},
	{
		required: func(p PasswordPolicy) bool { return p.RequireLowercase },
		matches:  unicode.IsLower,
		message:  "must contain a lowercase letter",
	},
	{
		required: func(p PasswordPolicy) bool { return p.RequireNumbers },
		matches:  unicode.IsDigit,
		message:  "must contain a number",
	},
	{
		required: func(p PasswordPolicy) bool { return p.RequireSpecialChars },
		matches:  func(r rune) bool { return strings.ContainsRune(specialCharacters, r) },
		message:  "must contain one of " + specialCharacters,
	},
}

// PasswordService hashes passwords and lets members change their own
type PasswordService struct {
	policy PasswordPolicy
	users  repositories.UserRepositoryInterface
}

func NewPasswordService(users repositories.UserRepositoryInterface, policy PasswordPolicy) PasswordServiceInterface {
	if policy.BCryptCost < bcrypt.MinCost || policy.BCryptCost > bcrypt.MaxCost {
		policy.BCryptCost = DefaultBCryptCost
	}
	if policy.MinLength <= 0 {
		policy.MinLength = MinPasswordLength
	}
	return &PasswordService{policy: policy, users: users}
}

// ValidatePassword reports the first policy rule the password breaks
func (ps *PasswordService) ValidatePassword(password string) error {
	switch {
	case len(password) < ps.policy.MinLength:
		return weakPassword("must be at least %d characters", ps.policy.MinLength)
	case len(password) > MaxPasswordLength:
		return weakPassword("must not exceed %d bytes", MaxPasswordLength)
	}

	for _, rule := range characterRules {
		if rule.required(ps.policy) && strings.IndexFunc(password, rule.matches) < 0 {
			return weakPassword("%s", rule.message)
		}
	}
	return nil
}

func weakPassword(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrWeakPassword, fmt.Sprintf(format, args...))
}

// HashPassword validates the password and returns its bcrypt hash
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), ps.policy.BCryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UpdatePassword replaces the caller's password once the current one checks out
func (ps *PasswordService) UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	if userID == uuid.Nil {
		return ErrInvalidUserID
	}
	if currentPassword == newPassword {
		return ErrSamePassword
	}
	if err := ps.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := ps.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !ps.ComparePassword(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordWrong
	}

	hash, err := ps.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := ps.users.UpdatePasswordHash(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
