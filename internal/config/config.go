package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

// ErrConfiguration is returned when a required setting is missing or invalid.
// It is fatal at startup.
var ErrConfiguration = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	LogLevel    string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	ParamSource string `validate:"oneof=path query"`
	Store       StoreConfig
	RateLimit   RateLimitConfig
}

// RateLimitConfig bounds request throughput on the local server. A zero
// rate disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"min=0"`
	Burst             int     `validate:"min=0"`
}

// StoreConfig holds key-value store configuration
type StoreConfig struct {
	Backend     string        `validate:"oneof=dynamodb sqlite redis"`
	TableName   string        `validate:"required"`
	Timeout     time.Duration `validate:"gt=0"`
	MaxAttempts int           `validate:"min=1,max=10"`
	DynamoDB    DynamoDBConfig
	SQLite      SQLiteConfig
	Redis       RedisConfig
}

// DynamoDBConfig holds DynamoDB client configuration
type DynamoDBConfig struct {
	Region         string
	Endpoint       string `validate:"omitempty,url"`
	ConsistentRead bool
}

// SQLiteConfig holds SQLite store configuration
type SQLiteConfig struct {
	Path        string
	AutoMigrate bool
}

// RedisConfig holds Redis client configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"min=0"`
}

// Error describes a startup configuration failure
type Error struct {
	Setting string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrConfiguration, e.Setting, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrConfiguration
}

// settingNames maps struct namespaces to the environment variables they come from
var settingNames = map[string]string{
	"Config.Environment":                 "ENVIRONMENT",
	"Config.Port":                        "PORT",
	"Config.LogLevel":                    "LOG_LEVEL",
	"Config.ParamSource":                 "ARK_PARAM_SOURCE",
	"Config.Store.Backend":               "ARK_STORE_BACKEND",
	"Config.Store.TableName":             "ARK_TABLE_NAME",
	"Config.Store.Timeout":               "ARK_STORE_TIMEOUT",
	"Config.Store.MaxAttempts":           "ARK_STORE_MAX_ATTEMPTS",
	"Config.Store.DynamoDB.Endpoint":     "ARK_DYNAMODB_ENDPOINT",
	"Config.Store.Redis.DB":              "ARK_REDIS_DB",
	"Config.RateLimit.RequestsPerSecond": "RATE_LIMIT_RPS",
	"Config.RateLimit.Burst":             "RATE_LIMIT_BURST",
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ARK_PARAM_SOURCE", "path")
	v.SetDefault("ARK_STORE_BACKEND", BackendDynamoDB)
	v.SetDefault("ARK_STORE_TIMEOUT", "3s")
	v.SetDefault("ARK_STORE_MAX_ATTEMPTS", 3)
	v.SetDefault("ARK_DYNAMODB_CONSISTENT_READ", false)
	v.SetDefault("ARK_SQLITE_PATH", "./data/ark.db")
	v.SetDefault("ARK_SQLITE_AUTO_MIGRATE", true)
	v.SetDefault("ARK_REDIS_ADDR", "localhost:6379")
	v.SetDefault("ARK_REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		ParamSource: strings.ToLower(v.GetString("ARK_PARAM_SOURCE")),
		Store: StoreConfig{
			Backend:     strings.ToLower(v.GetString("ARK_STORE_BACKEND")),
			TableName:   strings.TrimSpace(v.GetString("ARK_TABLE_NAME")),
			Timeout:     v.GetDuration("ARK_STORE_TIMEOUT"),
			MaxAttempts: v.GetInt("ARK_STORE_MAX_ATTEMPTS"),
			DynamoDB: DynamoDBConfig{
				Region:         v.GetString("AWS_REGION"),
				Endpoint:       v.GetString("ARK_DYNAMODB_ENDPOINT"),
				ConsistentRead: v.GetBool("ARK_DYNAMODB_CONSISTENT_READ"),
			},
			SQLite: SQLiteConfig{
				Path:        v.GetString("ARK_SQLITE_PATH"),
				AutoMigrate: v.GetBool("ARK_SQLITE_AUTO_MIGRATE"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("ARK_REDIS_ADDR"),
				Password: v.GetString("ARK_REDIS_PASSWORD"),
				DB:       v.GetInt("ARK_REDIS_DB"),
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

var validate = validator.New()

// Validate checks required settings and their formats
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &Error{Setting: "config", Reason: err.Error()}
	}

	first := validationErrors[0]
	setting, ok := settingNames[first.Namespace()]
	if !ok {
		setting = first.Namespace()
	}
	if first.Tag() == "required" {
		return &Error{Setting: setting, Reason: "must be set"}
	}
	return &Error{Setting: setting, Reason: fmt.Sprintf("failed %q validation (value %v)", first.Tag(), first.Value())}
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
