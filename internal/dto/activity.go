package dto

import (
	"time"

	"fire-tracker/internal/models"
)

// ActivityResponse is a page of the caller's audit trail
type ActivityResponse struct {
	Activities []*models.AuditLog `json:"activities"`
	Total      int64              `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
}

// MaintenanceReport counts the rows removed by one cleanup run
type MaintenanceReport struct {
	ExpiredRefreshTokens    int64     `json:"expired_refresh_tokens"`
	RevokedRefreshTokens    int64     `json:"revoked_refresh_tokens"`
	ExpiredBlacklistEntries int64     `json:"expired_blacklist_entries"`
	AuditLogsPurged         int64     `json:"audit_logs_purged"`
	RanAt                   time.Time `json:"ran_at"`
}

// DemoDataResponse reports a demo data generation run
type DemoDataResponse struct {
	Message             string `json:"message"`
	Months              int    `json:"months"`
	TransactionsCreated int    `json:"transactions_created"`
}
