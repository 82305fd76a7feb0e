package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy restricts a query to the rows of one user
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// within bounds column by an inclusive range; nil ends are open
func within(column string, from, to *time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// page applies offset and limit. A limit outside 1..maxLimit becomes fallback.
func page(offset, limit, fallback, maxLimit int) func(*gorm.DB) *gorm.DB {
	if limit <= 0 || limit > maxLimit {
		limit = fallback
	}
	if offset < 0 {
		offset = 0
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}

// lookupError maps gorm's missing-row error to notFound and wraps anything else
func lookupError(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// uniqueViolation matches unique index failures from postgres and sqlite.
// Without TranslateError gorm passes the driver error through untouched.
func uniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	for _, marker := range []string{"23505", "duplicate key", "UNIQUE constraint"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
