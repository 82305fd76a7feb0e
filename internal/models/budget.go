package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetStatusActive   = "ACTIVE"
	BudgetStatusPaused   = "PAUSED"
	BudgetStatusArchived = "ARCHIVED"

	DefaultAlertThreshold = 80
)

var (
	ErrInvalidBudgetStatus    = errors.New("invalid budget status")
	ErrNegativeBudgetAmount   = errors.New("budget amount must not be negative")
	ErrInvalidAlertThreshold  = errors.New("alert threshold must be between 0 and 100")
	ErrBudgetEndBeforeStart   = errors.New("budget end date is before start date")
	ErrBudgetCategoryRequired = errors.New("budget category is required")
)

// Budget is a spending limit for one category over an optionally open-ended date range.
type Budget struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category       string          `gorm:"type:varchar(50);not null" json:"category"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	AlertThreshold *int            `json:"alert_threshold,omitempty"`
	Status         string          `gorm:"type:varchar(10);not null;default:'ACTIVE';index" json:"status"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if b.Status == "" {
		b.Status = BudgetStatusActive
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if b.Amount.IsNegative() {
		return ErrNegativeBudgetAmount
	}

	if !IsValidBudgetStatus(b.Status) {
		return ErrInvalidBudgetStatus
	}

	if b.AlertThreshold != nil && (*b.AlertThreshold < 0 || *b.AlertThreshold > 100) {
		return ErrInvalidAlertThreshold
	}

	if b.EndDate != nil && b.EndDate.Before(b.StartDate) {
		return ErrBudgetEndBeforeStart
	}

	return nil
}

// Threshold returns the alert threshold percentage, defaulting to 80.
func (b *Budget) Threshold() int {
	if b.AlertThreshold == nil {
		return DefaultAlertThreshold
	}
	return *b.AlertThreshold
}

func (b *Budget) IsActive() bool {
	return b.Status == BudgetStatusActive
}

// AppliesTo reports whether the budget overlaps [start, end].
func (b *Budget) AppliesTo(start, end time.Time) bool {
	if b.StartDate.After(end) {
		return false
	}
	return b.EndDate == nil || !b.EndDate.Before(start)
}

func (b *Budget) TableName() string {
	return "budgets"
}

func IsValidBudgetStatus(status string) bool {
	switch status {
	case BudgetStatusActive, BudgetStatusPaused, BudgetStatusArchived:
		return true
	default:
		return false
	}
}
