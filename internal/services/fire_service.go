package services

import (
	"context"
	"errors"
	"time"

	"fire-tracker/internal/finance"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidFireParameters is returned when the stored profile or a request
// override is outside the calculation's preconditions.
var ErrInvalidFireParameters = errors.New("invalid FIRE parameters")

const (
	ExpenseSourceAnnual   = "profile_annual"
	ExpenseSourceMonthly  = "profile_monthly"
	ExpenseSourceTrailing = "trailing_transactions"
)

type FireService struct {
	profileService  ProfileServiceInterface
	netWorthRepo    repositories.NetWorthRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	trailingMonths  int
	now             func() time.Time
}

func NewFireService(
	profileService ProfileServiceInterface,
	netWorthRepo repositories.NetWorthRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	trailingMonths int,
) FireServiceInterface {
	if trailingMonths <= 0 {
		trailingMonths = 12
	}
	return &FireService{
		profileService:  profileService,
		netWorthRepo:    netWorthRepo,
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
		trailingMonths:  trailingMonths,
		now:             time.Now,
	}
}

// GetProgress computes the FIRE, Coast FIRE and Barista FIRE targets and how
// far the latest net worth is toward each. partTimeIncome overrides the
// profile value when set.
func (s *FireService) GetProgress(ctx context.Context, userID uuid.UUID, partTimeIncome *decimal.Decimal) (*models.FireProgress, error) {
	start := time.Now()

	profile, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	income := profile.PartTimeIncome
	if partTimeIncome != nil {
		income = *partTimeIncome
	}

	if err := validateFireInputs(profile, income); err != nil {
		s.recordOutcome("invalid")
		return nil, err
	}

	annualExpenses, source, err := s.annualExpenses(ctx, userID, profile)
	if err != nil {
		s.recordOutcome("failed")
		return nil, err
	}

	netWorth, err := s.currentNetWorth(userID)
	if err != nil {
		s.recordOutcome("failed")
		return nil, err
	}

	progress, err := computeProgress(profile, annualExpenses, income, netWorth)
	if err != nil {
		if errors.Is(err, finance.ErrUndefinedTarget) {
			s.auditLogger.LogFireTargetUndefined(ctx, userID, profile.SwrRate.String())
			s.recordOutcome("undefined")
		}
		return nil, err
	}
	progress.GeneratedAt = s.now()

	s.recordOutcome("success")
	s.metrics.RecordProcessingTime("fire_calculation", time.Since(start))
	s.auditLogger.LogFireProgressComputed(ctx, userID, source, progress)

	return progress, nil
}

func (s *FireService) recordOutcome(outcome string) {
	s.metrics.IncrementCounter("fire_calculation", map[string]string{
		"outcome": outcome,
	})
}

// annualExpenses prefers the profile's annual figure, then twelve times the
// monthly figure, then the expense total of the trailing complete months.
func (s *FireService) annualExpenses(ctx context.Context, userID uuid.UUID, profile *models.Profile) (decimal.Decimal, string, error) {
	if profile.AnnualExpenses.IsPositive() {
		return profile.AnnualExpenses, ExpenseSourceAnnual, nil
	}
	if profile.MonthlyExpenses.IsPositive() {
		return profile.MonthlyExpenses.Mul(monthsPerYear), ExpenseSourceMonthly, nil
	}

	period := finance.TrailingMonths(s.now().UTC(), s.trailingMonths)
	transactions, err := s.transactionRepo.GetByDateRange(userID, period.Start, period.End)
	if err != nil {
		return decimal.Zero, "", err
	}

	total, err := finance.NewAggregator(period).SumByType(transactions, models.TransactionTypeExpense)
	if err != nil {
		if errors.Is(err, finance.ErrMalformedDate) {
			s.auditLogger.LogMalformedRecord(ctx, userID, "transaction", err.Error())
		}
		return decimal.Zero, "", err
	}

	// Scale to a year when fewer or more than twelve months are configured.
	if s.trailingMonths != 12 {
		total = total.Mul(monthsPerYear).Div(decimal.NewFromInt(int64(s.trailingMonths)))
	}

	return total, ExpenseSourceTrailing, nil
}

func (s *FireService) currentNetWorth(userID uuid.UUID) (decimal.Decimal, error) {
	latest, err := s.netWorthRepo.GetLatest(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNetWorthSnapshotNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return latest.NetWorth, nil
}

func validateFireInputs(profile *models.Profile, partTimeIncome decimal.Decimal) error {
	if err := profile.Validate(); err != nil {
		return errors.Join(ErrInvalidFireParameters, err)
	}
	if partTimeIncome.IsNegative() {
		return errors.Join(ErrInvalidFireParameters, models.ErrNegativeIncome)
	}
	return nil
}

// computeProgress rounds targets to cents and progress to one decimal.
func computeProgress(profile *models.Profile, annualExpenses, partTimeIncome, netWorth decimal.Decimal) (*models.FireProgress, error) {
	fire, err := finance.FireNumber(annualExpenses, profile.SwrRate)
	if err != nil {
		return nil, err
	}

	coast, err := finance.CoastFireNumber(annualExpenses, profile.SwrRate, profile.CurrentAge, profile.RetirementAge, profile.ExpectedReturn)
	if err != nil {
		return nil, err
	}

	barista, err := finance.BaristaFireNumber(annualExpenses, profile.SwrRate, partTimeIncome)
	if err != nil {
		return nil, err
	}

	return &models.FireProgress{
		FireTarget:          fire.Round(2),
		CoastFireTarget:     coast.Round(2),
		BaristaFireTarget:   barista.Round(2),
		CurrentNetWorth:     netWorth,
		AnnualExpenses:      annualExpenses.Round(2),
		PartTimeIncome:      partTimeIncome,
		YearsToRetirement:   profile.RetirementAge - profile.CurrentAge,
		FireProgress:        finance.ProgressRatio(netWorth, fire).Round(1),
		CoastFireProgress:   finance.ProgressRatio(netWorth, coast).Round(1),
		BaristaFireProgress: finance.ProgressRatio(netWorth, barista).Round(1),
	}, nil
}
