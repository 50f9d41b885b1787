package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv("FOLIO_DATA_DIR", dir)
	t.Setenv("FOLIO_DB_NAME", "")
	t.Setenv("FOLIO_BASE_CURRENCY", "")
	t.Setenv("GO_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")
	t.Setenv("FOLIO_PARALLEL_AGGREGATION", "")
	t.Setenv("FOLIO_CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.DataDir)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "reference.db"), cfg.DatabasePath())
	assert.Equal(t, "EUR", cfg.BaseCurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8001, cfg.Port)
	assert.False(t, cfg.DevMode)
	assert.True(t, cfg.ParallelAggregation)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FOLIO_DATA_DIR", t.TempDir())
	t.Setenv("FOLIO_DB_NAME", "folio.db")
	t.Setenv("FOLIO_BASE_CURRENCY", "usd")
	t.Setenv("GO_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("FOLIO_PARALLEL_AGGREGATION", "false")
	t.Setenv("FOLIO_CORS_ORIGINS", "http://localhost:3000, https://folio.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "folio.db", cfg.DatabaseName)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.False(t, cfg.ParallelAggregation)
	assert.Equal(t, []string{"http://localhost:3000", "https://folio.example"}, cfg.CORSOrigins)
}

func TestLoad_MalformedNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("FOLIO_DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "eighty")
	t.Setenv("FOLIO_PARALLEL_AGGREGATION", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8001, cfg.Port)
	assert.True(t, cfg.ParallelAggregation)
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 8001, BaseCurrency: "EUR", DatabaseName: "reference.db"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"unknown currency", func(c *Config) { c.BaseCurrency = "XXQ" }},
		{"empty database name", func(c *Config) { c.DatabaseName = "" }},
		{"database name with directory", func(c *Config) { c.DatabaseName = filepath.Join("sub", "reference.db") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_InvalidCurrency(t *testing.T) {
	t.Setenv("FOLIO_DATA_DIR", t.TempDir())
	t.Setenv("FOLIO_BASE_CURRENCY", "EURO")

	_, err := Load()
	assert.ErrorContains(t, err, "FOLIO_BASE_CURRENCY")
}
