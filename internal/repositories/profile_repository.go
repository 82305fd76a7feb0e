package repositories

import (
	"errors"
	"fmt"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new FIRE profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if uniqueViolation(err) {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(profile *models.Profile) error {
	if profile == nil {
		return errors.New("profile cannot be nil")
	}

	if err := r.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
