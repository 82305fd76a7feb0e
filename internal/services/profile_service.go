package services

import (
	"context"
	"errors"
	"fmt"

	"fire-tracker/internal/dto"
	"fire-tracker/internal/models"
	"fire-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSwrRate = errors.New("safe withdrawal rate must be greater than 0")
	monthsPerYear     = decimal.NewFromInt(12)
)

type ProfileService struct {
	repo        repositories.ProfileRepositoryInterface
	defaults    models.ProfileDefaults
	auditLogger AuditLoggerInterface
}

func NewProfileService(
	repo repositories.ProfileRepositoryInterface,
	defaults models.ProfileDefaults,
	auditLogger AuditLoggerInterface,
) ProfileServiceInterface {
	return &ProfileService{
		repo:        repo,
		defaults:    defaults,
		auditLogger: auditLogger,
	}
}

// CreateDefaultProfile stores a profile built from the configured defaults.
// An existing profile is returned unchanged.
func (s *ProfileService) CreateDefaultProfile(userID uuid.UUID) (*models.Profile, error) {
	profile := models.NewProfile(userID, s.defaults)
	if err := s.repo.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return s.repo.GetByUserID(userID)
		}
		return nil, err
	}

	s.auditLogger.LogProfileCreated(context.Background(), userID, false)
	return profile, nil
}

// GetProfile returns the user's profile, creating it with defaults on first access.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, err
	}

	profile = models.NewProfile(userID, s.defaults)
	if err := s.repo.Create(profile); err != nil {
		// Lost a race with a concurrent first access.
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return s.repo.GetByUserID(userID)
		}
		return nil, err
	}

	s.auditLogger.LogProfileCreated(ctx, userID, true)
	return profile, nil
}

// UpdateProfile applies the provided fields and returns the profile together
// with the changed fields. When only one of monthly or annual expenses is
// sent the other is derived from it.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, map[string]interface{}, error) {
	if req == nil {
		return nil, nil, validationError(fmt.Errorf("request body is required"))
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	changes := make(map[string]interface{})

	if req.SwrRate != nil {
		rate, err := parseAmount("swr_rate", *req.SwrRate)
		if err != nil {
			return nil, nil, err
		}
		if !rate.IsPositive() {
			return nil, nil, validationError(ErrInvalidSwrRate)
		}
		profile.SwrRate = rate
		changes["swr_rate"] = rate.String()
	}
	if req.ExpectedReturn != nil {
		rate, err := parseAmount("expected_return", *req.ExpectedReturn)
		if err != nil {
			return nil, nil, err
		}
		profile.ExpectedReturn = rate
		changes["expected_return"] = rate.String()
	}
	if req.CurrentAge != nil {
		profile.CurrentAge = *req.CurrentAge
		changes["current_age"] = *req.CurrentAge
	}
	if req.RetirementAge != nil {
		profile.RetirementAge = *req.RetirementAge
		changes["retirement_age"] = *req.RetirementAge
	}
	if req.PartTimeIncome != nil {
		income, err := parseAmount("part_time_income", *req.PartTimeIncome)
		if err != nil {
			return nil, nil, err
		}
		profile.PartTimeIncome = income
		changes["part_time_income"] = income.String()
	}

	if err := s.applyExpenses(profile, req, changes); err != nil {
		return nil, nil, err
	}

	if err := profile.Validate(); err != nil {
		return nil, nil, validationError(err)
	}

	if len(changes) == 0 {
		return profile, changes, nil
	}

	if err := s.repo.Update(profile); err != nil {
		return nil, nil, err
	}

	return profile, changes, nil
}

func (s *ProfileService) applyExpenses(profile *models.Profile, req *dto.UpdateProfileRequest, changes map[string]interface{}) error {
	var monthly, annual *decimal.Decimal

	if req.MonthlyExpenses != nil {
		value, err := parseAmount("monthly_expenses", *req.MonthlyExpenses)
		if err != nil {
			return err
		}
		monthly = &value
	}
	if req.AnnualExpenses != nil {
		value, err := parseAmount("annual_expenses", *req.AnnualExpenses)
		if err != nil {
			return err
		}
		annual = &value
	}

	switch {
	case monthly != nil && annual != nil:
		profile.MonthlyExpenses = *monthly
		profile.AnnualExpenses = *annual
	case monthly != nil:
		profile.MonthlyExpenses = *monthly
		profile.AnnualExpenses = monthly.Mul(monthsPerYear).Round(2)
	case annual != nil:
		profile.AnnualExpenses = *annual
		profile.MonthlyExpenses = annual.Div(monthsPerYear).Round(2)
	default:
		return nil
	}

	changes["monthly_expenses"] = profile.MonthlyExpenses.StringFixed(2)
	changes["annual_expenses"] = profile.AnnualExpenses.StringFixed(2)
	return nil
}
