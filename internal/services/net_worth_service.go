package services

import (
	"context"
	"fmt"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

type NetWorthService struct {
	repo    repositories.NetWorthRepositoryInterface
	metrics MetricsRecorderInterface
}

func NewNetWorthService(repo repositories.NetWorthRepositoryInterface, metrics MetricsRecorderInterface) NetWorthServiceInterface {
	return &NetWorthService{
		repo:    repo,
		metrics: metrics,
	}
}

func (s *NetWorthService) RecordSnapshot(ctx context.Context, userID uuid.UUID, req *dto.CreateNetWorthSnapshotRequest) (*models.NetWorthSnapshot, error) {
	if req == nil {
		return nil, validationError(fmt.Errorf("request body is required"))
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	assets, err := parseAmount("assets", req.Assets)
	if err != nil {
		return nil, err
	}

	liabilities, err := parseAmount("liabilities", req.Liabilities)
	if err != nil {
		return nil, err
	}

	snapshot := &models.NetWorthSnapshot{
		UserID:      userID,
		Date:        date,
		Assets:      assets,
		Liabilities: liabilities,
		Notes:       req.Notes,
	}
	snapshot.CalculateNetWorth()

	if err := snapshot.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.Create(snapshot); err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("net_worth_recorded", snapshot.NetWorth.InexactFloat64(), nil)
	return snapshot, nil
}

// ListSnapshots returns the history oldest first, optionally bounded by date.
func (s *NetWorthService) ListSnapshots(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) ([]models.NetWorthSnapshot, error) {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, validationError(fmt.Errorf("startDate is after endDate"))
	}
	return s.repo.ListByUserID(userID, startDate, endDate)
}

func (s *NetWorthService) GetLatestSnapshot(ctx context.Context, userID uuid.UUID) (*models.NetWorthSnapshot, error) {
	return s.repo.GetLatest(userID)
}

func (s *NetWorthService) DeleteSnapshot(ctx context.Context, userID, snapshotID uuid.UUID) error {
	return s.repo.Delete(snapshotID, userID)
}
