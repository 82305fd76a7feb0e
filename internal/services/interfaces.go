package services

import (
	"context"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface defines transaction bookkeeping operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}

// BudgetServiceInterface defines budget management and the monthly overview
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID, status string) ([]models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error
	GetOverview(ctx context.Context, userID uuid.UUID, period finance.Period) ([]models.BudgetOverviewItem, error)
}

// ProfileServiceInterface manages the single FIRE profile of each user
type ProfileServiceInterface interface {
	CreateDefaultProfile(userID uuid.UUID) (*models.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, map[string]interface{}, error)
}

// NetWorthServiceInterface records and reads net worth snapshots
type NetWorthServiceInterface interface {
	RecordSnapshot(ctx context.Context, userID uuid.UUID, req *dto.CreateNetWorthSnapshotRequest) (*models.NetWorthSnapshot, error)
	ListSnapshots(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]models.NetWorthSnapshot, error)
	GetLatestSnapshot(ctx context.Context, userID uuid.UUID) (*models.NetWorthSnapshot, error)
	DeleteSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error
}

// DashboardServiceInterface builds the period summaries shown on the dashboard
type DashboardServiceInterface interface {
	GetSummary(ctx context.Context, userID uuid.UUID, period finance.Period) (*models.DashboardSummary, error)
	GetCategorySpending(ctx context.Context, userID uuid.UUID, period finance.Period, transactionType string) ([]models.CategorySpendingEntry, error)
}

// FireServiceInterface computes FIRE targets and progress for a user
type FireServiceInterface interface {
	GetProgress(ctx context.Context, userID uuid.UUID, partTimeIncome *decimal.Decimal) (*models.FireProgress, error)
}

// DemoDataServiceInterface seeds realistic transactions for local development
type DemoDataServiceInterface interface {
	GenerateDemoData(ctx context.Context, userID uuid.UUID, months int) (int, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	LogResourceChange(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) error
	LogProfileUpdate(userID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error
	LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error
	LogDemoDataSeeded(userID uuid.UUID, months, created int, ipAddress, userAgent string) error
}

// MaintenanceServiceInterface runs periodic cleanup of expired auth state and old audit rows
type MaintenanceServiceInterface interface {
	RunOnce(ctx context.Context) (*dto.MaintenanceReport, error)
	Start(ctx context.Context)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic transaction data for demos and tests
type TransactionGeneratorInterface interface {
	GenerateMonth(userID uuid.UUID, month finance.Period) []models.Transaction
	GenerateSalaryTransactions(userID uuid.UUID, month finance.Period) []models.Transaction
	GenerateBillTransactions(userID uuid.UUID, month finance.Period) []models.Transaction
	GenerateDailyPurchases(userID uuid.UUID, month finance.Period) []models.Transaction
	GenerateAmount(category string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.SessionClaims, error)
	ValidateRefreshToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	ParseUnverified(tokenString string) (*models.SessionClaims, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error
}

type AuditLoggerInterface interface {
	LogTransactionRecorded(ctx context.Context, userID, transactionID uuid.UUID, transactionType, amount string)
	LogBudgetAlert(ctx context.Context, userID uuid.UUID, item models.BudgetOverviewItem)
	LogFireProgressComputed(ctx context.Context, userID uuid.UUID, expenseSource string, progress *models.FireProgress)
	LogFireTargetUndefined(ctx context.Context, userID uuid.UUID, swrRate string)
	LogMalformedRecord(ctx context.Context, userID uuid.UUID, entity, reason string)
	LogProfileCreated(ctx context.Context, userID uuid.UUID, lazily bool)
	LogDemoDataGenerated(ctx context.Context, userID uuid.UUID, months, created int, durationMs int64)
	LogMaintenanceRun(ctx context.Context, report *dto.MaintenanceReport, durationMs int64)
}
