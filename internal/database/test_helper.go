package database

import (
	"testing"

	"fire-tracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns an in-memory sqlite database carrying the full schema
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gdb, err := open(sqlite.Open(":memory:"), logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// each pooled connection to :memory: would see its own empty database
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: gdb}
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// CreateTestUser stores a member with a placeholder hash
func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$04$placeholder",
		FirstName:    "Test",
		LastName:     "Saver",
		Role:         models.RoleMember,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// CleanupTestDB closes the database; the in-memory data goes with it
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Logf("close test database: %v", err)
	}
}
