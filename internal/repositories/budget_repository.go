package repositories

import (
	"errors"
	"fmt"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByUserID lists a user's budgets ordered by category. An empty status
// returns budgets in every status.
func (r *budgetRepository) GetByUserID(userID uuid.UUID, status string) ([]models.Budget, error) {
	var budgets []models.Budget

	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("category ASC, start_date ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) Update(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}

func (r *budgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
