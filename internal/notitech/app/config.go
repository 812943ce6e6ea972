package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ResetCodesInStore = "store"
	ResetCodesInRedis = "redis"

	minSecretLen = 32
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: notitech.db)
	DatabaseURL    string // Postgres DSN, required for the postgres driver

	ResetCodeBackend string // store or redis (default: store)
	RedisAddr        string
	RedisPassword    string
	RedisDB          int

	JWTSecret    string        // Required outside dev; at least 32 bytes
	JWTIssuer    string        // Issuer claim (default: notitech)
	TokenTTL     time.Duration // Session lifetime (default: 168h)
	ResetCodeTTL time.Duration // Reset code lifetime (default: 30m)
	PepperFile   string        // Pepper for password hashing (default: pepper)

	AdminToken      string // Enables /api/admin routes when set
	ExposeResetCode bool   // Echo reset codes in responses (default: true in dev)
	MetricsEnabled  bool   // Serve /metrics (default: true)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the environment, after merging a .env file from the
// working directory if there is one. Variables already set win over .env.
func LoadConfig() Config {
	_ = godotenv.Load()

	env := getEnvOrDefault("ENV", "dev")
	return Config{
		Env:       env,
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "notitech.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		ResetCodeBackend: getEnvOrDefault("RESET_CODE_BACKEND", ResetCodesInStore),
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvIntOrDefault("REDIS_DB", 0),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    getEnvOrDefault("JWT_ISSUER", "notitech"),
		TokenTTL:     getEnvDurationOrDefault("TOKEN_TTL", 7*24*time.Hour),
		ResetCodeTTL: getEnvDurationOrDefault("RESET_CODE_TTL", 30*time.Minute),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		AdminToken:      os.Getenv("ADMIN_TOKEN"),
		ExposeResetCode: getEnvBoolOrDefault("EXPOSE_RESET_CODE", env == "dev"),
		MetricsEnabled:  getEnvBoolOrDefault("METRICS_ENABLED", true),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	switch c.ResetCodeBackend {
	case ResetCodesInStore:
	case ResetCodesInRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis reset code backend")
		}
	default:
		return fmt.Errorf("unknown RESET_CODE_BACKEND %q", c.ResetCodeBackend)
	}

	if c.JWTSecret == "" && c.Env != "dev" {
		return errors.New("JWT_SECRET is required outside dev")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLen)
	}
	if c.TokenTTL <= 0 || c.ResetCodeTTL <= 0 {
		return errors.New("TOKEN_TTL and RESET_CODE_TTL must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
