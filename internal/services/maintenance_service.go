package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/repositories"
)

// MaintenanceService removes expired refresh tokens, blacklist entries and
// audit rows past their retention on a fixed interval.
type MaintenanceService struct {
	refreshTokenRepo  repositories.RefreshTokenRepositoryInterface
	blacklistRepo     repositories.BlacklistedTokenRepositoryInterface
	auditLogRepo      repositories.AuditLogRepositoryInterface
	auditLogger       AuditLoggerInterface
	metrics           MetricsRecorderInterface
	interval          time.Duration
	revokedTokenTTL   time.Duration
	auditLogRetention time.Duration
	logger            *slog.Logger
}

type MaintenanceConfig struct {
	Interval          time.Duration
	RevokedTokenTTL   time.Duration
	AuditLogRetention time.Duration
}

func NewMaintenanceService(
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	blacklistRepo repositories.BlacklistedTokenRepositoryInterface,
	auditLogRepo repositories.AuditLogRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	cfg MaintenanceConfig,
) MaintenanceServiceInterface {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &MaintenanceService{
		refreshTokenRepo:  refreshTokenRepo,
		blacklistRepo:     blacklistRepo,
		auditLogRepo:      auditLogRepo,
		auditLogger:       auditLogger,
		metrics:           metrics,
		interval:          cfg.Interval,
		revokedTokenTTL:   cfg.RevokedTokenTTL,
		auditLogRetention: cfg.AuditLogRetention,
		logger:            slog.Default(),
	}
}

// Start runs cleanup immediately and then on every tick until ctx is cancelled.
func (s *MaintenanceService) Start(ctx context.Context) {
	s.logger.Info("starting maintenance service",
		slog.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("maintenance service stopped")
			return
		case <-ticker.C:
			s.runAndLog(ctx)
		}
	}
}

func (s *MaintenanceService) runAndLog(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("maintenance run failed",
			slog.String("error", err.Error()),
		)
	}
}

// RunOnce performs a single cleanup pass. Every step runs even when an
// earlier one fails; the errors are joined.
func (s *MaintenanceService) RunOnce(ctx context.Context) (*dto.MaintenanceReport, error) {
	start := time.Now()
	report := &dto.MaintenanceReport{RanAt: start}
	var errs []error

	if n, err := s.refreshTokenRepo.DeleteExpired(); err != nil {
		errs = append(errs, fmt.Errorf("expired refresh tokens: %w", err))
	} else {
		report.ExpiredRefreshTokens = n
	}

	if s.revokedTokenTTL > 0 {
		if n, err := s.refreshTokenRepo.DeleteRevokedOlderThan(s.revokedTokenTTL); err != nil {
			errs = append(errs, fmt.Errorf("revoked refresh tokens: %w", err))
		} else {
			report.RevokedRefreshTokens = n
		}
	}

	if n, err := s.blacklistRepo.DeleteExpired(); err != nil {
		errs = append(errs, fmt.Errorf("expired blacklist entries: %w", err))
	} else {
		report.ExpiredBlacklistEntries = n
	}

	if s.auditLogRetention > 0 {
		if n, err := s.auditLogRepo.DeleteOlderThan(s.auditLogRetention); err != nil {
			errs = append(errs, fmt.Errorf("audit logs: %w", err))
		} else {
			report.AuditLogsPurged = n
		}
	}

	s.metrics.RecordGauge("maintenance_rows_purged", float64(report.ExpiredRefreshTokens+report.RevokedRefreshTokens), map[string]string{"kind": "refresh_tokens"})
	s.metrics.RecordGauge("maintenance_rows_purged", float64(report.ExpiredBlacklistEntries), map[string]string{"kind": "blacklisted_tokens"})
	s.metrics.RecordGauge("maintenance_rows_purged", float64(report.AuditLogsPurged), map[string]string{"kind": "audit_logs"})
	s.metrics.RecordProcessingTime("maintenance_run", time.Since(start))
	s.auditLogger.LogMaintenanceRun(ctx, report, time.Since(start).Milliseconds())

	return report, errors.Join(errs...)
}
