package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultDemoMonths = 3
	MaxDemoMonths     = 24
)

var ErrInvalidDemoMonths = fmt.Errorf("months must be between 1 and %d", MaxDemoMonths)

type DemoDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       TransactionGeneratorInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewDemoDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator TransactionGeneratorInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) DemoDataServiceInterface {
	return &DemoDataService{
		transactionRepo: transactionRepo,
		generator:       generator,
		auditLogger:     auditLogger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// GenerateDemoData stores generated transactions for the current month and
// the months-1 before it. The current month stops at the present moment.
func (s *DemoDataService) GenerateDemoData(ctx context.Context, userID uuid.UUID, months int) (int, error) {
	if userID == uuid.Nil {
		return 0, ErrInvalidUserID
	}
	if months < 1 || months > MaxDemoMonths {
		return 0, validationError(ErrInvalidDemoMonths)
	}

	start := time.Now()
	now := s.now().UTC()
	current := finance.MonthOf(now)

	transactions := make([]models.Transaction, 0)
	for i := months - 1; i >= 0; i-- {
		month := finance.MonthOf(current.Start.AddDate(0, -i, 0))
		if month.End.After(now) {
			month.End = now
		}
		transactions = append(transactions, s.generator.GenerateMonth(userID, month)...)
	}

	if len(transactions) == 0 {
		return 0, nil
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			return 0, validationError(err)
		}
		return 0, err
	}

	s.metrics.RecordGauge("demo_transactions_generated", float64(len(transactions)), nil)
	s.auditLogger.LogDemoDataGenerated(ctx, userID, months, len(transactions), time.Since(start).Milliseconds())

	return len(transactions), nil
}
