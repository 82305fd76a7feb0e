package repositories

import (
	"fmt"
	"time"

	"fire-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blacklistedTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &blacklistedTokenRepository{db: db, now: time.Now}
}

// Create blacklists a JTI. Blacklisting the same JTI twice is a no-op.
func (r *blacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if err := r.db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "jti"}}, DoNothing: true}).
		Create(token).Error; err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether the access token with this JTI was revoked
func (r *blacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BlacklistedToken{}).
		Where("jti = ? AND expires_at > ?", jti, r.now().UTC()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return count > 0, nil
}

func (r *blacklistedTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at <= ?", r.now().UTC()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired blacklist entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
