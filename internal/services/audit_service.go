package services

import (
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
)

// AuditService persists audit rows written on behalf of handlers. The auth
// service writes its own rows straight to the repository.
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{repo: repo}
}

func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}
	if !models.IsAuditAction(log.Action) {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidAuditLog, log.Action)
	}
	if log.Resource == "" {
		return fmt.Errorf("%w: resource is required", ErrInvalidAuditLog)
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// GetUserActivity pages through the rows owned by userID, newest first.
// Either bound of the date range may be nil.
func (s *AuditService) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, 0, ErrAuditDateRange
	}
	return s.repo.GetUserActivity(userID, startDate, endDate, offset, limit)
}

func (s *AuditService) LogResourceChange(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) error {
	return s.CreateAuditLog(userEntry(userID, action, resource, resourceID, ipAddress, userAgent, metadata))
}

// LogProfileUpdate stores the changed profile fields as metadata
func (s *AuditService) LogProfileUpdate(userID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error {
	return s.CreateAuditLog(userEntry(userID, models.AuditActionProfileUpdated, models.AuditResourceProfile,
		userID.String(), ipAddress, userAgent, changes))
}

func (s *AuditService) LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(userEntry(userID, models.AuditActionPasswordUpdate, models.AuditResourceAuth,
		userID.String(), ipAddress, userAgent, nil))
}

func (s *AuditService) LogDemoDataSeeded(userID uuid.UUID, months, created int, ipAddress, userAgent string) error {
	entry := userEntry(userID, models.AuditActionDemoSeeded, models.AuditResourceTransaction,
		userID.String(), ipAddress, userAgent, nil)
	entry.Annotate("months", months).Annotate("created", created)
	return s.CreateAuditLog(entry)
}

func userEntry(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) *models.AuditLog {
	return &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}
}
