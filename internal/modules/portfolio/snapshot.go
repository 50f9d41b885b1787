// Package portfolio assembles portfolio snapshots from reference data,
// holdings and prices.
package portfolio

import (
	"fmt"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/allocation"
	"github.com/aristath/folio/internal/modules/enrichment"
	"github.com/aristath/folio/internal/modules/statistics"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Input is everything one snapshot is computed from
type Input struct {
	Reference domain.ReferenceData
	Holdings  []domain.Holding
	Prices    domain.PriceLookup
}

// Options tunes how a snapshot is computed. The result never depends on them.
type Options struct {
	// Parallel runs the allocation passes and statistics concurrently
	Parallel bool
}

// BuildSnapshot enriches instruments and holdings, computes the portfolio
// total and weights, then runs the allocation passes and the statistics
// summarizer over the same holdings.
//
// Structurally malformed input is returned as an error wrapping
// domain.ErrInvalidReferenceData. Missing reference rows, missing prices and
// unmatched holdings degrade the snapshot and are listed in DataGaps. An empty
// holdings list yields a zero-valued snapshot with empty bucket lists.
func BuildSnapshot(in Input, opts Options) (*domain.Snapshot, error) {
	if err := in.Reference.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	if err := domain.ValidateHoldings(in.Holdings); err != nil {
		return nil, fmt.Errorf("invalid holdings: %w", err)
	}

	instruments, instrumentGaps := enrichment.EnrichInstruments(in.Reference, in.Prices)
	holdings, holdingGaps := enrichment.EnrichHoldings(in.Holdings, instruments)

	total := allocation.Total(holdings)
	for i := range holdings {
		holdings[i].Weight = formulas.Weight(holdings[i].MarketValue, total)
	}

	snap := &domain.Snapshot{
		TotalValue: total,
		Holdings:   holdings,
	}
	snap.TotalCostBasis, snap.TotalProfitLoss = totals(holdings)

	ref := in.Reference
	passes := []func(){
		func() { snap.AssetClasses = allocation.ByAssetClass(holdings, ref.AssetClasses, total) },
		func() { snap.Sectors = allocation.BySector(holdings, ref.Sectors, total) },
		func() { snap.Industries = allocation.ByIndustry(holdings, ref.Industries, ref.Sectors, total) },
		func() { snap.Currencies = allocation.ByCurrency(holdings, ref.Currencies, total) },
		func() {
			geo := allocation.ByGeography(holdings, ref.Countries, ref.Regions, total)
			snap.Countries, snap.Regions = geo.Countries, geo.Regions
		},
		func() { snap.Markets = allocation.ByMarket(holdings, ref.Markets, total) },
		func() { snap.Statistics = statistics.Summarize(holdings) },
		func() { snap.Concentration = statistics.Concentration(holdings) },
	}
	run(passes, opts.Parallel)

	gaps := make([]domain.DataGap, 0, len(instrumentGaps)+len(holdingGaps))
	gaps = append(gaps, instrumentGaps...)
	gaps = append(gaps, holdingGaps...)
	domain.SortGaps(gaps)
	snap.DataGaps = gaps

	return snap, nil
}

// run executes independent passes. Each pass writes a distinct snapshot field
// and only reads the shared holdings and total.
func run(passes []func(), parallel bool) {
	if !parallel {
		for _, pass := range passes {
			pass()
		}
		return
	}

	var g errgroup.Group
	for _, pass := range passes {
		pass := pass
		g.Go(func() error {
			pass()
			return nil
		})
	}
	_ = g.Wait()
}

func totals(holdings []domain.EnrichedHolding) (decimal.Decimal, decimal.Decimal) {
	cost := decimal.Zero
	pl := decimal.Zero
	for _, h := range holdings {
		cost = cost.Add(h.CostBasis)
		pl = pl.Add(h.ProfitLossAbsolute)
	}
	return cost, pl
}
