package repositories

import (
	"errors"
	"fmt"
	"time"

	"fire-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

const transactionBatchSize = 200

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch inserts all rows or none
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, transactionBatchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByIDForUser reports another user's row as not found
func (r *transactionRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Take(&transaction).Error; err != nil {
		return nil, lookupError(err, ErrTransactionNotFound, "transaction")
	}
	return &transaction, nil
}

// GetWithFilters returns one page, newest first, and the number of matching rows.
// The uncategorized label matches rows without a category.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	matching := func() *gorm.DB {
		q := r.db.Model(&models.Transaction{}).
			Scopes(ownedBy(filters.UserID), within("date", filters.StartDate, filters.EndDate))
		if filters.Type != "" {
			q = q.Where("type = ?", filters.Type)
		}
		switch filters.Category {
		case "":
		case models.UncategorizedLabel:
			q = q.Where("category IS NULL")
		default:
			q = q.Where("category = ?", filters.Category)
		}
		return q
	}

	var total int64
	if err := matching().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	var transactions []models.Transaction
	err := matching().Offset(filters.Offset).Limit(filters.Limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}
	return transactions, total, nil
}

// GetByDateRange loads every row dated within [startDate, endDate], oldest first
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Scopes(ownedBy(userID), within("date", &startDate, &endDate)).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) Delete(id, userID uuid.UUID) error {
	res := r.db.Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
