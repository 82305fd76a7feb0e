package config

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Migration   MigrationConfig
	JWT         JWTConfig
	Security    SecurityConfig
	Fire        FireConfig
	Palette     PaletteConfig
	Maintenance MaintenanceConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	DemoDataEnabled  bool
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MigrationConfig struct {
	AutoMigrate    bool
	SeedDatabase   bool
	MigrationsPath string
	SeedsPath      string
}

// FireConfig holds the parameters a new profile starts with.
type FireConfig struct {
	DefaultSwrRate         decimal.Decimal
	DefaultCurrentAge      int
	DefaultRetirementAge   int
	DefaultExpectedReturn  decimal.Decimal
	DefaultMonthlyExpenses decimal.Decimal
	DefaultAnnualExpenses  decimal.Decimal
	TrailingExpenseMonths  int
}

// PaletteConfig maps categories to chart colors.
type PaletteConfig struct {
	CategoryColors map[string]string
	Fallback       []string
}

// MaintenanceConfig controls the background cleanup job. A zero retention
// disables that step.
type MaintenanceConfig struct {
	Enabled           bool
	Interval          time.Duration
	RevokedTokenTTL   time.Duration
	AuditLogRetention time.Duration
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
	Audience             string
}

type SecurityConfig struct {
	BCryptCost          int
	RateLimitPerSecond  int
	MaxFailedAttempts   int
	PasswordMinLength   int
	RequireUppercase    bool
	RequireLowercase    bool
	RequireNumbers      bool
	RequireSpecialChars bool
}

// DefaultFallbackPalette colors categories that have no configured color.
var DefaultFallbackPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#3B82F6",
	"#8B5CF6", "#EC4899", "#14B8A6", "#F97316", "#6B7280",
}

// Load builds the configuration from the environment. Every malformed value
// is reported in the returned error, not only the first one.
func Load() (*Config, error) {
	e := &env{}
	environment := e.str("APP_ENV", EnvDevelopment)

	cfg := &Config{
		Server: ServerConfig{
			Port:             e.str("SERVER_PORT", "8080"),
			Host:             e.str("SERVER_HOST", "localhost"),
			Environment:      environment,
			ReadTimeout:      e.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     e.duration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: e.list("CORS_ALLOW_ORIGINS", []string{"*"}),
			DemoDataEnabled:  e.bool("DEMO_DATA_ENABLED", environment == EnvDevelopment),
		},
		Database: DatabaseConfig{
			Host:            e.str("DB_HOST", "localhost"),
			Port:            e.str("DB_PORT", "5432"),
			User:            e.str("DB_USER", "fire_user"),
			Password:        e.str("DB_PASSWORD", "fire_password"),
			Name:            e.str("DB_NAME", "fire_tracker"),
			SSLMode:         e.str("DB_SSL_MODE", "disable"),
			MaxConnections:  e.int("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    e.int("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: e.duration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Migration: MigrationConfig{
			AutoMigrate:    e.bool("AUTO_MIGRATE", false),
			SeedDatabase:   e.bool("SEED_DATABASE", false),
			MigrationsPath: e.str("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:      e.str("SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			BCryptCost:          e.int("BCRYPT_COST", 12),
			RateLimitPerSecond:  e.int("RATE_LIMIT_PER_SECOND", 5),
			MaxFailedAttempts:   e.int("MAX_FAILED_ATTEMPTS", 3),
			PasswordMinLength:   e.int("PASSWORD_MIN_LENGTH", 12),
			RequireUppercase:    e.bool("PASSWORD_REQUIRE_UPPERCASE", true),
			RequireLowercase:    e.bool("PASSWORD_REQUIRE_LOWERCASE", true),
			RequireNumbers:      e.bool("PASSWORD_REQUIRE_NUMBERS", true),
			RequireSpecialChars: e.bool("PASSWORD_REQUIRE_SPECIAL", true),
		},
		Fire: FireConfig{
			DefaultSwrRate:         e.decimal("FIRE_DEFAULT_SWR_RATE", decimal.NewFromInt(4)),
			DefaultCurrentAge:      e.int("FIRE_DEFAULT_CURRENT_AGE", 30),
			DefaultRetirementAge:   e.int("FIRE_DEFAULT_RETIREMENT_AGE", 65),
			DefaultExpectedReturn:  e.decimal("FIRE_DEFAULT_EXPECTED_RETURN", decimal.NewFromInt(7)),
			DefaultMonthlyExpenses: e.decimal("FIRE_DEFAULT_MONTHLY_EXPENSES", decimal.NewFromInt(2350)),
			DefaultAnnualExpenses:  e.decimal("FIRE_DEFAULT_ANNUAL_EXPENSES", decimal.NewFromInt(28200)),
			TrailingExpenseMonths:  e.int("FIRE_TRAILING_EXPENSE_MONTHS", 12),
		},
		Palette: PaletteConfig{
			CategoryColors: e.pairs("CATEGORY_COLORS"),
			Fallback:       e.list("FALLBACK_PALETTE", DefaultFallbackPalette),
		},
		Maintenance: MaintenanceConfig{
			Enabled:           e.bool("MAINTENANCE_ENABLED", true),
			Interval:          e.duration("MAINTENANCE_INTERVAL", time.Hour),
			RevokedTokenTTL:   e.duration("MAINTENANCE_REVOKED_TOKEN_TTL", 7*24*time.Hour),
			AuditLogRetention: e.duration("MAINTENANCE_AUDIT_RETENTION", 365*24*time.Hour),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  e.duration("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute),
			RefreshTokenDuration: e.duration("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               e.str("JWT_ISSUER", "fire-tracker"),
			Audience:             e.str("JWT_AUDIENCE", "fire-tracker-api"),
		},
	}

	errs := append(e.errs, cfg.check()...)
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	if cfg.IsProduction() && len(cfg.Server.CORSAllowOrigins) == 1 && cfg.Server.CORSAllowOrigins[0] == "*" {
		slog.Warn("CORS_ALLOW_ORIGINS not set in production, every origin is allowed")
	}

	var err error
	cfg.JWT.PrivateKey, cfg.JWT.PublicKey, err = loadJWTKeys(cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("load JWT keys: %w", err)
	}
	return cfg, nil
}

// check rejects settings that parse but cannot work together
func (c *Config) check() []error {
	var errs []error
	positive := []struct {
		key   string
		value int
	}{
		{"MAX_FAILED_ATTEMPTS", c.Security.MaxFailedAttempts},
		{"RATE_LIMIT_PER_SECOND", c.Security.RateLimitPerSecond},
		{"FIRE_TRAILING_EXPENSE_MONTHS", c.Fire.TrailingExpenseMonths},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.key, p.value))
		}
	}
	if c.JWT.AccessTokenDuration <= 0 || c.JWT.RefreshTokenDuration <= c.JWT.AccessTokenDuration {
		errs = append(errs, errors.New("JWT refresh token duration must exceed a positive access token duration"))
	}
	if c.Fire.DefaultRetirementAge <= c.Fire.DefaultCurrentAge {
		errs = append(errs, errors.New("FIRE_DEFAULT_RETIREMENT_AGE must be greater than FIRE_DEFAULT_CURRENT_AGE"))
	}
	if c.Maintenance.Enabled && c.Maintenance.Interval <= 0 {
		errs = append(errs, errors.New("MAINTENANCE_INTERVAL must be positive when maintenance is enabled"))
	}
	return errs
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}
