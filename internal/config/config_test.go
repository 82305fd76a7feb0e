package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FireDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Fire.DefaultSwrRate.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, 30, cfg.Fire.DefaultCurrentAge)
	assert.Equal(t, 65, cfg.Fire.DefaultRetirementAge)
	assert.True(t, cfg.Fire.DefaultExpectedReturn.Equal(decimal.NewFromInt(7)))
	assert.True(t, cfg.Fire.DefaultMonthlyExpenses.Equal(decimal.NewFromInt(2350)))
	assert.True(t, cfg.Fire.DefaultAnnualExpenses.Equal(decimal.NewFromInt(28200)))
	assert.Equal(t, 12, cfg.Fire.TrailingExpenseMonths)
	assert.Equal(t, DefaultFallbackPalette, cfg.Palette.Fallback)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.False(t, cfg.Server.DemoDataEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("FIRE_DEFAULT_SWR_RATE", "3.5")
	t.Setenv("CATEGORY_COLORS", "Groceries=#10B981, Dining = #F59E0B,broken,=#000")
	t.Setenv("FALLBACK_PALETTE", "#111111, #222222")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com, ,https://admin.example.com")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Fire.DefaultSwrRate.Equal(decimal.RequireFromString("3.5")))
	assert.Equal(t, map[string]string{"Groceries": "#10B981", "Dining": "#F59E0B"}, cfg.Palette.CategoryColors)
	assert.Equal(t, []string{"#111111", "#222222"}, cfg.Palette.Fallback)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.Migration.AutoMigrate)
	assert.True(t, cfg.Server.DemoDataEnabled)
}

func TestLoad_ReportsEveryMalformedValue(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)
	t.Setenv("FIRE_DEFAULT_CURRENT_AGE", "not-a-number")
	t.Setenv("AUTO_MIGRATE", "sometimes")
	t.Setenv("MAINTENANCE_INTERVAL", "hourly")
	t.Setenv("FIRE_DEFAULT_SWR_RATE", "4%")

	_, err := Load()

	require.Error(t, err)
	for _, key := range []string{"FIRE_DEFAULT_CURRENT_AGE", "AUTO_MIGRATE", "MAINTENANCE_INTERVAL", "FIRE_DEFAULT_SWR_RATE"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestLoad_RejectsInconsistentSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"lockout disabled", map[string]string{"MAX_FAILED_ATTEMPTS": "0"}, "MAX_FAILED_ATTEMPTS"},
		{"no rate limit", map[string]string{"RATE_LIMIT_PER_SECOND": "-1"}, "RATE_LIMIT_PER_SECOND"},
		{"retirement before current age", map[string]string{"FIRE_DEFAULT_CURRENT_AGE": "70"}, "FIRE_DEFAULT_RETIREMENT_AGE"},
		{"refresh shorter than access", map[string]string{"JWT_REFRESH_TOKEN_DURATION": "5m"}, "refresh token duration"},
		{"maintenance without interval", map[string]string{"MAINTENANCE_INTERVAL": "0s"}, "MAINTENANCE_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvTesting)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "fire", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=fire sslmode=disable", cfg.DSN())
}

func TestLoad_MaintenanceSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)
	t.Setenv("MAINTENANCE_INTERVAL", "15m")
	t.Setenv("MAINTENANCE_AUDIT_RETENTION", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Maintenance.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Maintenance.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Maintenance.RevokedTokenTTL)
	assert.Zero(t, cfg.Maintenance.AuditLogRetention)
}

func TestLoad_JWTDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvTesting)
	t.Setenv("JWT_AUDIENCE", "")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenDuration)
	assert.Equal(t, "fire-tracker", cfg.JWT.Issuer)
	assert.Equal(t, "fire-tracker-api", cfg.JWT.Audience)
	assert.NotNil(t, cfg.JWT.PrivateKey)
}

func TestLoad_ProductionRequiresKeys(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set in production")
}

func encodeKeys(t *testing.T) (privateB64, publicB64 string) {
	t.Helper()
	private, public, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(public)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(private)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return base64.StdEncoding.EncodeToString(privatePEM), base64.StdEncoding.EncodeToString(publicPEM)
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	privateB64, publicB64 := encodeKeys(t)
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("JWT_PRIVATE_KEY", privateB64)
	t.Setenv("JWT_PUBLIC_KEY", publicB64)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.JWT.PrivateKey.PublicKey.Equal(cfg.JWT.PublicKey))
}

func TestLoad_MismatchedKeys(t *testing.T) {
	privateB64, _ := encodeKeys(t)
	_, otherPublicB64 := encodeKeys(t)
	t.Setenv("APP_ENV", EnvTesting)
	t.Setenv("JWT_PRIVATE_KEY", privateB64)
	t.Setenv("JWT_PUBLIC_KEY", otherPublicB64)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}

func TestParseRSAPrivateKey_PKCS8(t *testing.T) {
	private, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(private)
	require.NoError(t, err)

	parsed, err := parseRSAPrivateKey(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))

	require.NoError(t, err)
	assert.True(t, private.Equal(parsed))

	_, err = parseRSAPrivateKey([]byte("not pem"))
	assert.Error(t, err)
	_, err = parseRSAPublicKey([]byte("not pem"))
	assert.Error(t, err)
}
