package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Storage     StorageConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
}

// StorageConfig holds entry store configuration
type StorageConfig struct {
	Backend    string `validate:"required,oneof=dynamodb sqlite memory"`
	TableName  string `validate:"required"`
	Region     string
	Endpoint   string `validate:"omitempty,url"`
	SQLitePath string `validate:"required_if=Backend sqlite"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"required,oneof=text json"`
}

// RateLimitConfig holds request rate limiting for the local server
type RateLimitConfig struct {
	RequestsPerSecond float64 `validate:"gt=0"`
	Burst             int     `validate:"gte=1"`
}

var validate = validator.New()

// Load loads configuration from environment variables and an optional .env file.
// TABLE_NAME is required; its absence is reported as an error
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORAGE_BACKEND", "dynamodb")
	viper.SetDefault("SQLITE_PATH", "./data/entries.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Storage: StorageConfig{
			Backend:    viper.GetString("STORAGE_BACKEND"),
			TableName:  viper.GetString("TABLE_NAME"),
			Region:     viper.GetString("AWS_REGION"),
			Endpoint:   viper.GetString("DYNAMODB_ENDPOINT"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the configured environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
