package services

import (
	"context"
	"log/slog"
	"time"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey is the request context key under which the trace ID is stored.
const CorrelationIDKey contextKey = "correlation_id"

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransactionRecorded(ctx context.Context, userID, transactionID uuid.UUID, transactionType, amount string) {
	al.logger.InfoContext(ctx, "transaction recorded",
		slog.String("event_type", "transaction_recorded"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("type", transactionType),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogBudgetAlert is emitted for overview items in the warning or danger band.
func (al *AuditLogger) LogBudgetAlert(ctx context.Context, userID uuid.UUID, item models.BudgetOverviewItem) {
	level := slog.LevelInfo
	if item.Status == models.BudgetHealthDanger {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "budget threshold crossed",
		slog.String("event_type", "budget_threshold_crossed"),
		slog.String("user_id", userID.String()),
		slog.String("budget_id", item.BudgetID),
		slog.String("category", item.Category),
		slog.String("budget", item.Budget.StringFixed(2)),
		slog.String("spent", item.Spent.StringFixed(2)),
		slog.String("percentage", item.Percentage.String()),
		slog.String("status", item.Status),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogFireProgressComputed(ctx context.Context, userID uuid.UUID, expenseSource string, progress *models.FireProgress) {
	attrs := []slog.Attr{
		slog.String("event_type", "fire_progress_computed"),
		slog.String("user_id", userID.String()),
		slog.String("expense_source", expenseSource),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if progress != nil {
		attrs = append(attrs,
			slog.String("fire_target", progress.FireTarget.String()),
			slog.String("fire_progress", progress.FireProgress.String()),
		)
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "fire progress computed", attrs...)
}

func (al *AuditLogger) LogFireTargetUndefined(ctx context.Context, userID uuid.UUID, swrRate string) {
	al.logger.WarnContext(ctx, "fire target undefined",
		slog.String("event_type", "fire_target_undefined"),
		slog.String("user_id", userID.String()),
		slog.String("swr_rate", swrRate),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMalformedRecord(ctx context.Context, userID uuid.UUID, entity, reason string) {
	al.logger.ErrorContext(ctx, "malformed record",
		slog.String("event_type", "malformed_record"),
		slog.String("user_id", userID.String()),
		slog.String("entity", entity),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProfileCreated(ctx context.Context, userID uuid.UUID, lazily bool) {
	al.logger.InfoContext(ctx, "profile created",
		slog.String("event_type", "profile_created"),
		slog.String("user_id", userID.String()),
		slog.Bool("lazy", lazily),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDemoDataGenerated(ctx context.Context, userID uuid.UUID, months, created int, durationMs int64) {
	al.logger.InfoContext(ctx, "demo data generated",
		slog.String("event_type", "demo_data_generated"),
		slog.String("user_id", userID.String()),
		slog.Int("months", months),
		slog.Int("transactions_created", created),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMaintenanceRun(ctx context.Context, report *dto.MaintenanceReport, durationMs int64) {
	if report == nil {
		return
	}

	al.logger.InfoContext(ctx, "maintenance run completed",
		slog.String("event_type", "maintenance_run"),
		slog.Int64("expired_refresh_tokens", report.ExpiredRefreshTokens),
		slog.Int64("revoked_refresh_tokens", report.RevokedRefreshTokens),
		slog.Int64("expired_blacklist_entries", report.ExpiredBlacklistEntries),
		slog.Int64("audit_logs_purged", report.AuditLogsPurged),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
