package enrichment

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/shopspring/decimal"
)

// EnrichHoldings values every holding whose ticker matches an enriched
// instrument. Holdings without a matching instrument are dropped and reported
// as GapUnmatchedHolding; they never appear as zero-value entries.
//
// Weight is left at zero; it depends on the portfolio total and is assigned by
// the orchestrator.
func EnrichHoldings(holdings []domain.Holding, instruments []domain.EnrichedInstrument) ([]domain.EnrichedHolding, []domain.DataGap) {
	byTicker := make(map[string]domain.EnrichedInstrument, len(instruments))
	for _, inst := range instruments {
		byTicker[inst.Ticker] = inst
	}

	out := make([]domain.EnrichedHolding, 0, len(holdings))
	var gaps []domain.DataGap

	for _, h := range holdings {
		inst, ok := byTicker[h.Ticker]
		if !ok {
			gaps = append(gaps, domain.DataGap{Kind: domain.GapUnmatchedHolding, Ticker: h.Ticker})
			continue
		}
		out = append(out, enrichHolding(h, inst))
	}

	return out, gaps
}

func enrichHolding(h domain.Holding, inst domain.EnrichedInstrument) domain.EnrichedHolding {
	marketValue := formulas.Value(h.Quantity, inst.CurrentPrice)
	costBasis := formulas.Value(h.Quantity, h.PurchasePrice)
	pl := formulas.SplitProfitLoss(marketValue, costBasis)

	return domain.EnrichedHolding{
		EnrichedInstrument: inst,
		Quantity:           h.Quantity,
		PurchaseDate:       h.PurchaseDate,
		PurchasePrice:      h.PurchasePrice,
		MarketValue:        marketValue,
		CostBasis:          costBasis,
		ProfitLossAbsolute: pl.Absolute,
		ProfitLossPercent:  pl.Ratio,
		Weight:             decimal.Zero,
	}
}
