package di

import (
	"github.com/aristath/folio/internal/database"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/reference"
)

// Container holds every long-lived dependency of the application
type Container struct {
	// Databases
	ReferenceDB *database.DB // Reference dimensions, instruments, prices and holdings

	// Repositories
	ReferenceRepo *reference.Repository

	// Services
	PortfolioService *portfolio.Service
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.ReferenceDB == nil {
		return nil
	}
	return c.ReferenceDB.Close()
}
