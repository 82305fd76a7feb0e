package dto

import "fire-tracker/internal/models"

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Category       string  `json:"category" validate:"required,min=1,max=50"`
	Amount         string  `json:"amount" validate:"required,money"`
	AlertThreshold *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0,max=100"`
	Status         string  `json:"status,omitempty" validate:"omitempty,budget_status"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateBudgetRequest carries the fields to change. An empty EndDate string
// makes the budget open ended again.
type UpdateBudgetRequest struct {
	Category       *string `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	Amount         *string `json:"amount,omitempty" validate:"omitempty,money"`
	AlertThreshold *int    `json:"alert_threshold,omitempty" validate:"omitempty,min=0,max=100"`
	Status         *string `json:"status,omitempty" validate:"omitempty,budget_status"`
	StartDate      *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date,omitempty" validate:"omitempty,eq=|datetime=2006-01-02"`
}

// ListBudgetsResponse wraps a user's budgets
type ListBudgetsResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Count   int             `json:"count"`
}
