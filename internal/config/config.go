// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aristath/folio/internal/utils"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir             string // Directory holding the reference database, always absolute
	DatabaseName        string // File name of the reference database inside DataDir
	BaseCurrency        string // ISO code portfolio totals are displayed in
	LogLevel            string
	Port                int
	DevMode             bool
	ParallelAggregation bool     // Run allocation passes concurrently
	CORSOrigins         []string // Allowed CORS origins
}

// DatabasePath returns the absolute path of the reference database
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseName)
}

// Load reads configuration from environment variables, after loading a .env
// file if one exists
func Load() (*Config, error) {
	_ = godotenv.Load()

	absDataDir, err := filepath.Abs(getEnv("FOLIO_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:             absDataDir,
		DatabaseName:        getEnv("FOLIO_DB_NAME", "reference.db"),
		BaseCurrency:        utils.NormalizeCode(getEnv("FOLIO_BASE_CURRENCY", "EUR")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Port:                getEnvAsInt("GO_PORT", 8001),
		DevMode:             getEnvAsBool("DEV_MODE", false),
		ParallelAggregation: getEnvAsBool("FOLIO_PARALLEL_AGGREGATION", true),
		CORSOrigins:         utils.SplitList(getEnv("FOLIO_CORS_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid GO_PORT %d: must be between 1 and 65535", c.Port)
	}
	if !formulas.IsCurrencyCode(c.BaseCurrency) {
		return fmt.Errorf("invalid FOLIO_BASE_CURRENCY %q: not an ISO 4217 code", c.BaseCurrency)
	}
	if c.DatabaseName == "" || strings.ContainsRune(c.DatabaseName, filepath.Separator) {
		return fmt.Errorf("invalid FOLIO_DB_NAME %q: must be a plain file name", c.DatabaseName)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
