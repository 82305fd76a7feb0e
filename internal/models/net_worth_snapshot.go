package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeAssets      = errors.New("assets must not be negative")
	ErrNegativeLiabilities = errors.New("liabilities must not be negative")
	ErrMissingSnapshotDate = errors.New("snapshot date is required")
)

// NetWorthSnapshot records assets and liabilities at a point in time.
type NetWorthSnapshot struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Assets      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"assets"`
	Liabilities decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"liabilities"`
	NetWorth    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"net_worth"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (s *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	s.CalculateNetWorth()
	return s.Validate()
}

// CalculateNetWorth sets NetWorth to Assets minus Liabilities.
func (s *NetWorthSnapshot) CalculateNetWorth() {
	s.NetWorth = s.Assets.Sub(s.Liabilities)
}

func (s *NetWorthSnapshot) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if s.Date.IsZero() {
		return ErrMissingSnapshotDate
	}
	if s.Assets.IsNegative() {
		return ErrNegativeAssets
	}
	if s.Liabilities.IsNegative() {
		return ErrNegativeLiabilities
	}
	return nil
}

func (s *NetWorthSnapshot) TableName() string {
	return "net_worth_snapshots"
}
