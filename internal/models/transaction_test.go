package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:      userID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(42.50),
				Description: "Weekly groceries",
				Category:    strPtr(CategoryGroceries),
				Date:        date,
			},
		},
		{
			name: "valid income without category",
			transaction: Transaction{
				UserID:      userID,
				Type:        TransactionTypeIncome,
				Amount:      decimal.NewFromInt(3000),
				Description: "Salary",
				Date:        date,
			},
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Type:        TransactionTypeIncome,
				Amount:      decimal.NewFromInt(10),
				Description: "Gift",
				Date:        date,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:      userID,
				Type:        "TRANSFER",
				Amount:      decimal.NewFromInt(10),
				Description: "Move",
				Date:        date,
			},
			wantErr: true,
			errMsg:  ErrInvalidTransactionType.Error(),
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:      userID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.Zero,
				Description: "Nothing",
				Date:        date,
			},
			wantErr: true,
			errMsg:  ErrInvalidAmount.Error(),
		},
		{
			name: "missing description",
			transaction: Transaction{
				UserID: userID,
				Type:   TransactionTypeExpense,
				Amount: decimal.NewFromInt(5),
				Date:   date,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
		{
			name: "category too long",
			transaction: Transaction{
				UserID:      userID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromInt(5),
				Description: "Coffee",
				Category:    strPtr("this category name is far longer than fifty characters allowed"),
				Date:        date,
			},
			wantErr: true,
			errMsg:  "category too long",
		},
		{
			name: "missing date",
			transaction: Transaction{
				UserID:      userID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromInt(5),
				Description: "Coffee",
			},
			wantErr: true,
			errMsg:  ErrMissingDate.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Normalize(t *testing.T) {
	tx := Transaction{Amount: decimal.NewFromFloat(-19.99), Category: strPtr("   ")}

	tx.Normalize()

	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(19.99)))
	assert.Nil(t, tx.Category)
}

func TestTransaction_BeforeCreate(t *testing.T) {
	tx := &Transaction{
		UserID:      uuid.New(),
		Type:        TransactionTypeExpense,
		Amount:      decimal.NewFromInt(-25),
		Description: "Cinema",
		Date:        time.Now(),
	}

	err := tx.BeforeCreate(nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(25)))
}

func TestTransaction_CategoryName(t *testing.T) {
	assert.Equal(t, UncategorizedLabel, (&Transaction{}).CategoryName())
	assert.Equal(t, UncategorizedLabel, (&Transaction{Category: strPtr("")}).CategoryName())
	assert.Equal(t, "Dining", (&Transaction{Category: strPtr("Dining")}).CategoryName())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType("income"))
	assert.False(t, IsValidTransactionType(""))
}
