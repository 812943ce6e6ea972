package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT",
	"DATABASE_DRIVER", "DATABASE_FILE", "DATABASE_URL",
	"RESET_CODE_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"JWT_SECRET", "JWT_ISSUER", "TOKEN_TTL", "RESET_CODE_TTL", "PEPPER_FILE",
	"ADMIN_TOKEN", "EXPOSE_RESET_CODE", "METRICS_ENABLED",
	"SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "notitech.db", cfg.DatabaseFile)
	require.Equal(t, ResetCodesInStore, cfg.ResetCodeBackend)
	require.Equal(t, "notitech", cfg.JWTIssuer)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 30*time.Minute, cfg.ResetCodeTTL)
	require.True(t, cfg.ExposeResetCode)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/notitech")
	t.Setenv("RESET_CODE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("RESET_CODE_TTL", "15")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("HOUSEKEEPING_INTERVAL", "not-a-duration")

	cfg := LoadConfig()
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 15*time.Minute, cfg.ResetCodeTTL)
	require.False(t, cfg.ExposeResetCode)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		Env:              "prod",
		DatabaseDriver:   DriverSQLite,
		ResetCodeBackend: ResetCodesInStore,
		JWTSecret:        "0123456789abcdef0123456789abcdef",
		TokenTTL:         time.Hour,
		ResetCodeTTL:     time.Minute,
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = DriverPostgres }},
		{"unknown backend", func(c *Config) { c.ResetCodeBackend = "memcached" }},
		{"redis without addr", func(c *Config) { c.ResetCodeBackend = ResetCodesInRedis }},
		{"missing secret outside dev", func(c *Config) { c.JWTSecret = "" }},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	dev := base
	dev.Env = "dev"
	dev.JWTSecret = ""
	require.NoError(t, dev.Validate())
}
