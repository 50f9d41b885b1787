package di

import (
	"github.com/aristath/folio/internal/config"
	"github.com/aristath/folio/internal/modules/portfolio"
	"github.com/aristath/folio/internal/modules/reference"
	"github.com/rs/zerolog"
)

// InitializeServices creates repositories and services on top of the
// container's databases
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) {
	container.ReferenceRepo = reference.NewRepository(container.ReferenceDB.Conn(), log)
	container.PortfolioService = portfolio.NewService(
		container.ReferenceRepo,
		portfolio.Options{Parallel: cfg.ParallelAggregation},
		log,
	)
}
