package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fire-tracker/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// Migrator applies the versioned SQL files under MigrationsPath and then the
// optional seed files, over a plain lib/pq connection.
type Migrator struct {
	db  *sql.DB
	cfg config.MigrationConfig

	attempts int
	backoff  time.Duration
}

func NewMigrator(db *sql.DB, cfg config.MigrationConfig) *Migrator {
	return &Migrator{db: db, cfg: cfg, attempts: 30, backoff: 2 * time.Second}
}

// OpenMigrationDB opens a single-connection pool reserved for schema changes.
func OpenMigrationDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// WaitReady pings with a fixed backoff until the server answers.
func (m *Migrator) WaitReady(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		if err = m.db.PingContext(ctx); err == nil {
			slog.Debug("database reachable", "attempt", attempt)
			return nil
		}
		slog.Warn("database not reachable yet", "attempt", attempt, "of", m.attempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.backoff):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", m.attempts, err)
}

func (m *Migrator) source() (*migrate.Migrate, error) {
	dir, err := filepath.Abs(m.cfg.MigrationsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations path: %w", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, dir)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}
	return migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
}

// Up applies every pending migration. A dirty version left by a crashed run
// is forced clean and re-applied.
func (m *Migrator) Up() error {
	mig, err := m.source()
	if err != nil {
		return err
	}

	from, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		slog.Warn("dirty migration version, forcing", "version", from)
		if err := mig.Force(int(from)); err != nil {
			return fmt.Errorf("force version %d: %w", from, err)
		}
	}

	switch err := mig.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("schema up to date", "version", from)
		return nil
	case err != nil:
		return fmt.Errorf("apply migrations: %w", err)
	}

	to, _, _ := mig.Version()
	slog.Info("migrations applied", "from", from, "to", to)
	return nil
}

// Seed runs the *.sql files of SeedsPath in name order. Seeds are optional
// data, so a failing file is logged and the rest still run.
func (m *Migrator) Seed(ctx context.Context) error {
	if !m.cfg.SeedDatabase {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(m.cfg.SeedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("list seed files: %w", err)
	}
	if len(files) == 0 {
		slog.Warn("no seed files found", "path", m.cfg.SeedsPath)
		return nil
	}

	for _, file := range files {
		script, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := m.db.ExecContext(ctx, string(script)); err != nil {
			slog.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		slog.Info("seed file applied", "file", filepath.Base(file))
	}
	return nil
}

// Version reports the applied migration version
func (m *Migrator) Version() (uint, bool, error) {
	mig, err := m.source()
	if err != nil {
		return 0, false, err
	}
	return mig.Version()
}

// Migrate waits for the database, applies the migrations and loads seeds.
// Seed failures are logged only.
func Migrate(ctx context.Context, db *sql.DB, cfg config.MigrationConfig) error {
	m := NewMigrator(db, cfg)
	if err := m.WaitReady(ctx); err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		return err
	}
	if err := m.Seed(ctx); err != nil {
		slog.Warn("seeding skipped", "error", err)
	}
	return nil
}
