package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MaxAge = 120

var (
	ErrInvalidSwrRate        = errors.New("safe withdrawal rate must be between 0 and 100")
	ErrInvalidExpectedReturn = errors.New("expected return must not be negative")
	ErrInvalidAge            = errors.New("age must be between 0 and 120")
	ErrNegativeExpenses      = errors.New("expenses must not be negative")
	ErrNegativeIncome        = errors.New("part-time income must not be negative")
)

// ProfileDefaults holds the values a lazily created profile starts with.
type ProfileDefaults struct {
	SwrRate         decimal.Decimal
	CurrentAge      int
	RetirementAge   int
	ExpectedReturn  decimal.Decimal
	MonthlyExpenses decimal.Decimal
	AnnualExpenses  decimal.Decimal
}

// StandardProfileDefaults returns the built-in defaults.
func StandardProfileDefaults() ProfileDefaults {
	return ProfileDefaults{
		SwrRate:         decimal.NewFromInt(4),
		CurrentAge:      30,
		RetirementAge:   65,
		ExpectedReturn:  decimal.NewFromInt(7),
		MonthlyExpenses: decimal.NewFromInt(2350),
		AnnualExpenses:  decimal.NewFromInt(28200),
	}
}

// Profile holds a user's FIRE planning parameters. Rates are percentages.
type Profile struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	SwrRate         decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"swr_rate"`
	CurrentAge      int             `gorm:"not null" json:"current_age"`
	RetirementAge   int             `gorm:"not null" json:"retirement_age"`
	ExpectedReturn  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"expected_return"`
	MonthlyExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_expenses"`
	AnnualExpenses  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"annual_expenses"`
	PartTimeIncome  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"part_time_income"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// NewProfile builds an unsaved profile for userID from defaults.
func NewProfile(userID uuid.UUID, d ProfileDefaults) *Profile {
	return &Profile{
		UserID:          userID,
		SwrRate:         d.SwrRate,
		CurrentAge:      d.CurrentAge,
		RetirementAge:   d.RetirementAge,
		ExpectedReturn:  d.ExpectedReturn,
		MonthlyExpenses: d.MonthlyExpenses,
		AnnualExpenses:  d.AnnualExpenses,
		PartTimeIncome:  decimal.Zero,
	}
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate checks the FIRE parameters. A zero swr rate is accepted here;
// the FIRE target is then reported as undefined rather than rejected.
func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if p.SwrRate.IsNegative() || p.SwrRate.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidSwrRate
	}

	if p.ExpectedReturn.IsNegative() {
		return ErrInvalidExpectedReturn
	}

	if p.CurrentAge < 0 || p.CurrentAge > MaxAge || p.RetirementAge < 0 || p.RetirementAge > MaxAge {
		return ErrInvalidAge
	}

	if p.MonthlyExpenses.IsNegative() || p.AnnualExpenses.IsNegative() {
		return ErrNegativeExpenses
	}

	if p.PartTimeIncome.IsNegative() {
		return ErrNegativeIncome
	}

	return nil
}

func (p *Profile) TableName() string {
	return "profiles"
}
