package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/database"
	"github.com/aristath/folio/pkg/logger"
	"github.com/rs/zerolog"
)

var (
	dbPath   = flag.String("db", "", "Path to the reference database. Defaults to FOLIO_DATA_DIR/FOLIO_DB_NAME.")
	logLevel = flag.String("log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
)

func newLogger() zerolog.Logger {
	return logger.New(logger.Config{
		Level:  *logLevel,
		Pretty: true,
		Output: os.Stderr,
	})
}

// openDB opens and migrates the reference database named by -db, falling
// back to the server configuration.
func openDB() (*database.DB, error) {
	p := *dbPath
	if p == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		p = cfg.DatabasePath()
	}

	db, err := database.New(database.Config{Path: p, Name: "reference"})
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
