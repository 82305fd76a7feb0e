package repositories

import (
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNetWorthSnapshotNotFound = errors.New("net worth snapshot not found")

type netWorthRepository struct {
	db *gorm.DB
}

// NewNetWorthRepository creates a new net worth snapshot repository
func NewNetWorthRepository(db *gorm.DB) NetWorthRepositoryInterface {
	return &netWorthRepository{db: db}
}

func (r *netWorthRepository) Create(snapshot *models.NetWorthSnapshot) error {
	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create net worth snapshot: %w", err)
	}
	return nil
}

func (r *netWorthRepository) GetByIDForUser(id, userID uuid.UUID) (*models.NetWorthSnapshot, error) {
	var snapshot models.NetWorthSnapshot
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNetWorthSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get net worth snapshot: %w", err)
	}
	return &snapshot, nil
}

// ListByUserID returns snapshots in chronological order, optionally bounded.
func (r *netWorthRepository) ListByUserID(userID uuid.UUID, startDate, endDate *time.Time) ([]models.NetWorthSnapshot, error) {
	var snapshots []models.NetWorthSnapshot

	query := r.db.Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	if err := query.Order("date ASC, created_at ASC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list net worth snapshots: %w", err)
	}
	return snapshots, nil
}

// GetLatest returns the snapshot with the most recent date. Snapshots
// sharing a date are ordered by creation time.
func (r *netWorthRepository) GetLatest(userID uuid.UUID) (*models.NetWorthSnapshot, error) {
	var snapshot models.NetWorthSnapshot
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNetWorthSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest net worth snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *netWorthRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.NetWorthSnapshot{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete net worth snapshot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNetWorthSnapshotNotFound
	}
	return nil
}
