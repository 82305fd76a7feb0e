package repositories

import (
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRaced    = errors.New("refresh token was used concurrently")
)

// RefreshTokenRepository persists refresh token records
type RefreshTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepositoryInterface {
	return &RefreshTokenRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	if token == nil {
		return errors.New("refresh token cannot be nil")
	}

	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.db.Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &token, nil
}

// Rotate revokes current and stores next as its successor in one
// transaction. The revocation is conditional on current still being active,
// so two requests racing with the same token cannot both succeed.
func (r *RefreshTokenRepository) Rotate(current, next *models.RefreshToken) error {
	if current == nil || next == nil {
		return errors.New("refresh tokens cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(next).Error; err != nil {
			return fmt.Errorf("failed to store rotated refresh token: %w", err)
		}

		revokedAt := r.now().UTC()
		result := tx.Model(&models.RefreshToken{}).
			Where("id = ? AND revoked_at IS NULL", current.ID).
			Updates(map[string]interface{}{
				"revoked_at":     revokedAt,
				"replaced_by_id": next.ID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRefreshTokenRaced
		}

		current.RevokedAt = &revokedAt
		current.ReplacedByID = &next.ID
		return nil
	})
}

// RevokeAllForUser ends every open session of the user and reports how
// many were still active
func (r *RefreshTokenRepository) RevokeAllForUser(userID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", r.now().UTC())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RefreshTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", r.now().UTC()).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteRevokedOlderThan drops revoked tokens once they are older than age.
// They are kept for a while so reuse of a rotated token can still be told
// apart from an unknown one.
func (r *RefreshTokenRepository) DeleteRevokedOlderThan(age time.Duration) (int64, error) {
	cutoff := r.now().UTC().Add(-age)

	result := r.db.Where("revoked_at IS NOT NULL AND revoked_at < ?", cutoff).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete revoked refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
