package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultWarehouseURL is the single default location of the sales warehouse.
// Overridable via WAREHOUSE_URL; everything else about the store lives in
// the warehouse itself.
const DefaultWarehouseURL = "postgres://localhost:5432/ecommerce_dwh?sslmode=disable"

// Config holds all configuration for the dashboard core. Environment
// variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Warehouse
	Warehouse WarehouseConfig

	// Snapshot export
	Snapshot SnapshotConfig

	// API rate limiting
	RateLimit RateLimitConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// WarehouseConfig holds the read-only warehouse store settings.
type WarehouseConfig struct {
	URL            string
	ConnectTimeout time.Duration
}

// SnapshotConfig controls the scheduled CSV export of all catalog reports.
// Disabled by default; the dashboard is request-driven.
type SnapshotConfig struct {
	Enabled  bool
	Schedule string // cron expression
	Dir      string
}

// RateLimitConfig bounds request throughput on the API surface.
type RateLimitConfig struct {
	PerSecond int
	Burst     int
}

// Load reads configuration from the environment, with a best-effort .env
// file load first.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8086"),
		Env:  getEnv("ENV", "development"),

		Warehouse: WarehouseConfig{
			URL:            getEnv("WAREHOUSE_URL", DefaultWarehouseURL),
			ConnectTimeout: getEnvAsDuration("WAREHOUSE_CONNECT_TIMEOUT", "5s"),
		},

		Snapshot: SnapshotConfig{
			Enabled:  getEnvAsBool("SNAPSHOT_ENABLED", false),
			Schedule: getEnv("SNAPSHOT_SCHEDULE", "0 0 6 * * *"),
			Dir:      getEnv("SNAPSHOT_DIR", "snapshots"),
		},

		RateLimit: RateLimitConfig{
			PerSecond: getEnvAsInt("RATE_LIMIT_PER_SECOND", 10),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 20),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Warehouse.URL == "" {
		return fmt.Errorf("WAREHOUSE_URL must not be empty")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}
	if c.RateLimit.PerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}
	return nil
}

// loadEnvFile tries .env in a few conventional locations.
func loadEnvFile() {
	paths := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fallback, _ := time.ParseDuration(defaultValue)
		return fallback
	}
	return value
}
