// Package di provides dependency injection wiring and initialization.
package di

import (
	"fmt"

	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the reference database and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	referenceDB, err := database.New(database.Config{
		Path: cfg.DatabasePath(),
		Name: "reference",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize reference database: %w", err)
	}

	if err := referenceDB.Migrate(); err != nil {
		referenceDB.Close()
		return nil, fmt.Errorf("failed to migrate reference database: %w", err)
	}

	log.Info().Str("path", referenceDB.Path()).Msg("Reference database ready")

	return &Container{ReferenceDB: referenceDB}, nil
}
