package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	// UncategorizedLabel is shown for transactions without a category.
	UncategorizedLabel = "Uncategorized"

	MaxCategoryLength    = 50
	MaxDescriptionLength = 255
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction is a single income or expense entry owned by a user.
// Amount is stored as a magnitude; the direction comes from Type.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    *string         `gorm:"type:varchar(50);index" json:"category,omitempty"`
	Type        string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.Normalize()
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.Normalize()
	return t.Validate()
}

// Normalize strips the sign from the amount and clears blank categories.
func (t *Transaction) Normalize() {
	t.Amount = t.Amount.Abs()
	if t.Category != nil && strings.TrimSpace(*t.Category) == "" {
		t.Category = nil
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if len(t.Description) > MaxDescriptionLength {
		return errors.New("transaction description too long")
	}

	if t.Category != nil && len(*t.Category) > MaxCategoryLength {
		return errors.New("category too long")
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// CategoryName returns the category, or the uncategorized label when none is set.
func (t *Transaction) CategoryName() string {
	if t.Category == nil || *t.Category == "" {
		return UncategorizedLabel
	}
	return *t.Category
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
