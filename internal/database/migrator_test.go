package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fire-tracker/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("dial tcp 127.0.0.1:5432: connection refused")

// newTestMigrator returns a migrator over sqlmock with a short backoff
func newTestMigrator(t *testing.T, cfg config.MigrationConfig, attempts int) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := NewMigrator(db, cfg)
	m.attempts = attempts
	m.backoff = 10 * time.Millisecond
	return m, mock
}

func seedDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestNewMigrator_Defaults(t *testing.T) {
	m := NewMigrator(nil, config.MigrationConfig{MigrationsPath: "db/migrations"})

	assert.Equal(t, 30, m.attempts)
	assert.Equal(t, 2*time.Second, m.backoff)
	assert.Equal(t, "db/migrations", m.cfg.MigrationsPath)
}

func TestWaitReady(t *testing.T) {
	tests := []struct {
		name     string
		pings    []error
		attempts int
		wantErr  bool
	}{
		{"first ping answers", []error{nil}, 3, false},
		{"answers after a refusal", []error{errRefused, nil}, 3, false},
		{"never answers", []error{errRefused, errRefused}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mock := newTestMigrator(t, config.MigrationConfig{}, tt.attempts)
			for _, ping := range tt.pings {
				mock.ExpectPing().WillReturnError(ping)
			}

			err := m.WaitReady(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errRefused)
				assert.Contains(t, err.Error(), "unreachable after 2 attempts")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitReady_StopsOnCancel(t *testing.T) {
	m, mock := newTestMigrator(t, config.MigrationConfig{}, 5)
	mock.ExpectPing().WillReturnError(errRefused)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.WaitReady(ctx), context.Canceled)
}

func TestUp_MissingDirectory(t *testing.T) {
	m, _ := newTestMigrator(t, config.MigrationConfig{MigrationsPath: filepath.Join(t.TempDir(), "absent")}, 1)

	assert.ErrorIs(t, m.Up(), ErrMigrationsNotFound)

	_, _, err := m.Version()
	assert.ErrorIs(t, err, ErrMigrationsNotFound)
}

func TestSeed_Disabled(t *testing.T) {
	m, mock := newTestMigrator(t, config.MigrationConfig{SeedsPath: seedDir(t, map[string]string{"001.sql": "SELECT 1;"})}, 1)

	assert.NoError(t, m.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_NoFiles(t *testing.T) {
	m, _ := newTestMigrator(t, config.MigrationConfig{SeedDatabase: true, SeedsPath: filepath.Join(t.TempDir(), "none")}, 1)

	assert.NoError(t, m.Seed(context.Background()))
}

func TestSeed_RunsInNameOrderAndContinuesPastFailures(t *testing.T) {
	dir := seedDir(t, map[string]string{
		"002_budgets.sql":    "INSERT INTO budgets (category) VALUES ('Groceries');",
		"001_categories.sql": "INSERT INTO categories (name) VALUES ('Housing');",
		"003_broken.sql":     "INSERT INTO missing_table VALUES (1);",
		"notes.txt":          "ignored",
	})
	m, mock := newTestMigrator(t, config.MigrationConfig{SeedDatabase: true, SeedsPath: dir}, 1)

	mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO budgets").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO missing_table").WillReturnError(errors.New(`relation "missing_table" does not exist`))

	assert.NoError(t, m.Seed(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "001_dir.sql"), 0o755))
	m, _ := newTestMigrator(t, config.MigrationConfig{SeedDatabase: true, SeedsPath: dir}, 1)

	err := m.Seed(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestMigrate_DatabaseUnreachable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectPing().WillReturnError(errRefused)
	cancel()

	assert.Error(t, Migrate(ctx, db, config.MigrationConfig{AutoMigrate: true}))
}

func TestApplySQLMigrations_DisabledUsesAutoMigrate(t *testing.T) {
	cfg := &config.Config{Migration: config.MigrationConfig{AutoMigrate: false}}

	assert.False(t, applySQLMigrations(context.Background(), cfg))
}

func TestOpenMigrationDB(t *testing.T) {
	db, err := OpenMigrationDB(&config.DatabaseConfig{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "fire", SSLMode: "disable"})

	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
