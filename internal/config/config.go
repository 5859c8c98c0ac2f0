package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`
	AppEnv  string `envconfig:"APP_ENV" default:"development"`

	// Configuration document
	DataFile string `envconfig:"DATA_FILE" default:"data/store.json"`

	// Admin auth. ADMIN_PASSWORD_HASH (bcrypt) takes precedence over the
	// plain ADMIN_PASSWORD when set.
	AdminPassword     string `envconfig:"ADMIN_PASSWORD"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `envconfig:"JWT_SECRET" default:"change-this-secret-in-production"`

	// Redis (admin sessions)
	RedisURL      string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// Google Sheets order ledger. When GOOGLE_SHEETS_ID is empty the
	// server runs with a logging mock ledger for local development.
	GoogleSheetsID    string `envconfig:"GOOGLE_SHEETS_ID"`
	GoogleCredentials string `envconfig:"GOOGLE_CREDENTIALS"` // service account JSON

	// Regional clock used for order timestamps and promotion windows.
	Timezone string `envconfig:"TIMEZONE" default:"America/Bogota"`

	// Outbound HTTP timeout for ledger calls, in seconds.
	UpstreamTimeoutSeconds int `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"15"`
}

var instance *Config

// Load initializes and returns the singleton Config instance
func Load() (*Config, error) {
	if instance != nil {
		return instance, nil
	}

	// Load .env file if it exists (for local development)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment variables: %w", err)
	}

	instance = cfg
	return instance, nil
}

// Get returns the singleton Config instance (must call Load first)
func Get() *Config {
	if instance == nil {
		panic("config not loaded: call config.Load() first")
	}
	return instance
}
