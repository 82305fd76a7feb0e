package repositories

import (
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

const (
	defaultActivityPage = 20
	maxActivityPage     = 100
)

// AuditLogRepository stores the append-only audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) GetByID(id uuid.UUID) (*models.AuditLog, error) {
	var log models.AuditLog
	if err := r.db.Where("id = ?", id).Take(&log).Error; err != nil {
		return nil, lookupError(err, ErrAuditLogNotFound, "audit log")
	}
	return &log, nil
}

// GetUserActivity returns one page of a user's rows, newest first, and the
// number of rows matching the date bounds
func (r *AuditLogRepository) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, errors.New("invalid user ID")
	}

	filtered := func() *gorm.DB {
		return r.db.Model(&models.AuditLog{}).Scopes(ownedBy(userID), within("created_at", startDate, endDate))
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	var logs []*models.AuditLog
	err := filtered().Scopes(page(offset, limit, defaultActivityPage, maxActivityPage)).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user activity: %w", err)
	}
	return logs, total, nil
}

// DeleteOlderThan prunes rows created before now minus age
func (r *AuditLogRepository) DeleteOlderThan(age time.Duration) (int64, error) {
	res := r.db.Where("created_at < ?", time.Now().Add(-age)).Delete(&models.AuditLog{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete old audit logs: %w", res.Error)
	}
	return res.RowsAffected, nil
}
