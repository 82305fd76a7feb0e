package dto

import (
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar dates in requests and query strings
const DateLayout = "2006-01-02"

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction.
// The amount sign is ignored; the direction comes from Type.
type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      string  `json:"amount" validate:"required,money"`
	Type        string  `json:"type" validate:"required,transaction_type"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes,omitempty" validate:"max=2000"`
}

// UpdateTransactionRequest carries the fields to change; nil fields are left untouched
type UpdateTransactionRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty" validate:"omitempty,money"`
	Type        *string `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// Transaction Response DTOs

// TransactionResponse is the API view of a transaction
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTransactionResponse converts a model, labelling a missing category as uncategorized
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Category:    t.CategoryName(),
		Type:        t.Type,
		Date:        t.Date.Format(DateLayout),
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ListTransactionsResponse represents a page of transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// NewListTransactionsResponse builds a page response from models
func NewListTransactionsResponse(transactions []models.Transaction, total int64, offset, limit int) ListTransactionsResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, NewTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{
		Transactions: out,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	}
}
