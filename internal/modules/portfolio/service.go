package portfolio

import (
	"context"
	"fmt"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/utils"
	"github.com/rs/zerolog"
)

// DataSource supplies the inputs of a snapshot
type DataSource interface {
	LoadReferenceData(ctx context.Context) (domain.ReferenceData, error)
	LoadHoldings(ctx context.Context) ([]domain.Holding, error)
	LoadPrices(ctx context.Context) (domain.PriceMap, error)
}

// Service loads inputs from a DataSource and builds snapshots.
//
// It is the caller side of the degradation contract: every data gap found
// while building a snapshot is logged as a warning.
type Service struct {
	source DataSource
	opts   Options
	log    zerolog.Logger
}

// NewService creates a new portfolio service
func NewService(source DataSource, opts Options, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		opts:   opts,
		log:    log.With().Str("service", "portfolio").Logger(),
	}
}

// Snapshot loads the current inputs and builds a fresh snapshot
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	timer := utils.NewTimer("build_snapshot", s.log)

	in, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := BuildSnapshot(in, s.opts)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to build snapshot")
		return nil, err
	}

	s.logGaps(snap.DataGaps)
	timer.Stop(map[string]interface{}{
		"holdings":  len(snap.Holdings),
		"data_gaps": len(snap.DataGaps),
		"parallel":  s.opts.Parallel,
	})

	return snap, nil
}

func (s *Service) load(ctx context.Context) (Input, error) {
	ref, err := s.source.LoadReferenceData(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load reference data: %w", err)
	}
	holdings, err := s.source.LoadHoldings(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load holdings: %w", err)
	}
	prices, err := s.source.LoadPrices(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load prices: %w", err)
	}
	return Input{Reference: ref, Holdings: holdings, Prices: prices}, nil
}

func (s *Service) logGaps(gaps []domain.DataGap) {
	for _, gap := range gaps {
		event := s.log.Warn().
			Str("kind", string(gap.Kind)).
			Str("ticker", gap.Ticker)
		if gap.Dimension != "" {
			event = event.
				Str("dimension", string(gap.Dimension)).
				Int64("key", gap.Key)
		}
		event.Msg("Snapshot degraded by incomplete data")
	}
}
