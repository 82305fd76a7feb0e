package dto

import "fire-tracker/internal/models"

// CreateNetWorthSnapshotRequest represents the request payload for recording net worth
type CreateNetWorthSnapshotRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Assets      string `json:"assets" validate:"required,money"`
	Liabilities string `json:"liabilities" validate:"required,money"`
	Notes       string `json:"notes,omitempty" validate:"max=2000"`
}

// NetWorthHistoryResponse lists snapshots oldest first
type NetWorthHistoryResponse struct {
	Snapshots []models.NetWorthSnapshot `json:"snapshots"`
	Count     int                       `json:"count"`
}
