package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Store drivers
const (
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string
	LogLevel    string

	// Persistence
	Store StoreConfig

	// Ledger
	Timezone             string
	DefaultMonthlyBudget decimal.Decimal
	DefaultMonthStartDay int
	WidgetPrivacy        bool

	RateLimit RateLimitConfig

	// S3 backups, disabled when Bucket is empty
	S3 S3Config

	// Event fan-out to RabbitMQ, disabled when URL is empty
	AMQP AMQPConfig
}

// StoreConfig selects and locates the ledger state store
type StoreConfig struct {
	Driver      string
	StateFile   string
	SQLitePath  string
	DatabaseURL string
}

// RateLimitConfig holds the per-client request limits
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether backups are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// AMQPConfig holds RabbitMQ configuration
type AMQPConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
}

// Enabled reports whether event publishing to RabbitMQ is configured
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	budget, err := decimal.NewFromString(getEnv("DEFAULT_MONTHLY_BUDGET", "50000"))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_MONTHLY_BUDGET: %w", err)
	}
	startDay, err := getEnvInt("DEFAULT_MONTH_START_DAY", 1)
	if err != nil {
		return nil, err
	}
	perMinute, err := getEnvInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 30)
	if err != nil {
		return nil, err
	}
	privacy, err := getEnvBool("WIDGET_PRIVACY", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFile)),
			StateFile:   getEnv("STATE_FILE", "data/fintrack.json"),
			SQLitePath:  getEnv("SQLITE_PATH", "data/fintrack.db"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		Timezone:             getEnv("TIMEZONE", "Local"),
		DefaultMonthlyBudget: budget,
		DefaultMonthStartDay: startDay,
		WidgetPrivacy:        privacy,
		RateLimit: RateLimitConfig{
			PerMinute: perMinute,
			Burst:     burst,
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			Prefix:          getEnv("S3_PREFIX", "fintrack"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
		AMQP: AMQPConfig{
			URL:        getEnv("AMQP_URL", ""),
			Exchange:   getEnv("AMQP_EXCHANGE", "fintrack.events"),
			RoutingKey: getEnv("AMQP_ROUTING_KEY", "ledger"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location returns the time zone used to decide what "today" is
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverSQLite, StoreDriverMemory:
	case StoreDriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.DefaultMonthStartDay < 1 || c.DefaultMonthStartDay > 31 {
		return fmt.Errorf("DEFAULT_MONTH_START_DAY must be between 1 and 31")
	}
	if c.DefaultMonthlyBudget.IsNegative() {
		return fmt.Errorf("DEFAULT_MONTHLY_BUDGET must not be negative")
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
