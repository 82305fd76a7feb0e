package repositories

import (
	"errors"
	"fmt"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

// Create inserts user. Emails are unique after normalization, so a second
// account for the same address fails with ErrUserAlreadyExists.
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	err := r.db.Create(user).Error
	switch {
	case err == nil:
		return nil
	case uniqueViolation(err):
		return ErrUserAlreadyExists
	default:
		return fmt.Errorf("failed to create user: %w", err)
	}
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	return r.take(r.db.Where("id = ?", id))
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.take(r.db.Where("email = ?", models.NormalizeEmail(email)))
}

func (r *UserRepository) take(q *gorm.DB) (*models.User, error) {
	user := new(models.User)
	if err := q.Take(user).Error; err != nil {
		return nil, lookupError(err, ErrUserNotFound, "user")
	}
	return user, nil
}

func (r *UserRepository) UpdatePasswordHash(userID uuid.UUID, passwordHash string) error {
	switch {
	case userID == uuid.Nil:
		return errors.New("nil user id")
	case passwordHash == "":
		return errors.New("empty password hash")
	}
	return r.set(userID, map[string]interface{}{"password_hash": passwordHash})
}

// SaveLoginState writes the lockout counter, lock stamp and last login of user
func (r *UserRepository) SaveLoginState(user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.set(user.ID, map[string]interface{}{
		"failed_login_attempts": user.FailedLoginAttempts,
		"locked_at":             user.LockedAt,
		"last_login_at":         user.LastLoginAt,
	})
}

func (r *UserRepository) ResetFailedLoginAttempts(userID uuid.UUID) error {
	return r.set(userID, map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_at":             nil,
	})
}

// set updates columns on one live user; soft-deleted users count as missing
func (r *UserRepository) set(userID uuid.UUID, columns map[string]interface{}) error {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(columns)
	if res.Error != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
