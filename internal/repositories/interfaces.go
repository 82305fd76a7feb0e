package repositories

import (
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Budget, error)
	GetByUserID(userID uuid.UUID, status string) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id, userID uuid.UUID) error
}

// ProfileRepositoryInterface defines the contract for FIRE profile operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	Update(profile *models.Profile) error
}

// NetWorthRepositoryInterface defines the contract for net worth snapshot operations
type NetWorthRepositoryInterface interface {
	Create(snapshot *models.NetWorthSnapshot) error
	GetByIDForUser(id, userID uuid.UUID) (*models.NetWorthSnapshot, error)
	ListByUserID(userID uuid.UUID, startDate, endDate *time.Time) ([]models.NetWorthSnapshot, error)
	GetLatest(userID uuid.UUID) (*models.NetWorthSnapshot, error)
	Delete(id, userID uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	SaveLoginState(user *models.User) error
	ResetFailedLoginAttempts(userID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

// RefreshTokenRepositoryInterface defines the contract for refresh token storage
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Rotate(current, next *models.RefreshToken) error
	RevokeAllForUser(userID uuid.UUID) (int64, error)
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(age time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for the access token blacklist
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}
