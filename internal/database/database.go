package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fire-tracker/internal/config"
	"fire-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the application's gorm handle
type DB struct {
	*gorm.DB
}

// schema lists the tables AutoMigrate owns, parents before children
var schema = []interface{}{
	&models.User{},
	&models.RefreshToken{},
	&models.BlacklistedToken{},
	&models.AuditLog{},
	&models.Transaction{},
	&models.Budget{},
	&models.Profile{},
	&models.NetWorthSnapshot{},
}

// secondaryIndexes cover the hot read paths. LOWER(email) backs the
// case-insensitive login lookup.
var secondaryIndexes = []struct {
	name, table, columns string
}{
	{"idx_users_email_lower", "users", "LOWER(email)"},
	{"idx_refresh_tokens_token_hash", "refresh_tokens", "token_hash"},
	{"idx_refresh_tokens_expires_at", "refresh_tokens", "expires_at"},
	{"idx_blacklisted_tokens_expires_at", "blacklisted_tokens", "expires_at"},
	{"idx_audit_logs_created_at", "audit_logs", "created_at"},
	{"idx_transactions_user_date", "transactions", "user_id, date DESC"},
	{"idx_transactions_user_type_date", "transactions", "user_id, type, date"},
	{"idx_budgets_user_status", "budgets", "user_id, status"},
	{"idx_net_worth_snapshots_user_date", "net_worth_snapshots", "user_id, date DESC"},
}

func open(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
}

// New connects to PostgreSQL and sizes the pool from cfg
func New(cfg *config.DatabaseConfig, level logger.LogLevel) (*DB, error) {
	db, err := open(postgres.Open(cfg.DSN()), level)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{DB: db}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(schema...)
}

// CreateIndexes adds the secondary indexes. A failing index is logged and skipped.
func (db *DB) CreateIndexes() {
	for _, idx := range secondaryIndexes {
		ddl := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(ddl).Error; err != nil {
			slog.Warn("failed to create index", "index", idx.name, "error", err)
		}
	}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize connects and prepares the schema. With AUTO_MIGRATE on, the SQL
// migrations run first and GORM AutoMigrate only covers a failed run.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := New(&cfg.Database, level)
	if err != nil {
		return nil, err
	}

	if !applySQLMigrations(ctx, cfg) {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	db.CreateIndexes()

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}

// applySQLMigrations reports whether the SQL migrations brought the schema up
// to date. Any failure, a missing directory included, leaves it to AutoMigrate.
func applySQLMigrations(ctx context.Context, cfg *config.Config) bool {
	if !cfg.Migration.AutoMigrate {
		return false
	}

	conn, err := OpenMigrationDB(&cfg.Database)
	if err != nil {
		slog.Warn("falling back to GORM AutoMigrate", "error", err)
		return false
	}
	defer conn.Close()

	if err := Migrate(ctx, conn, cfg.Migration); err != nil {
		slog.Warn("falling back to GORM AutoMigrate", "error", err)
		return false
	}
	return true
}
