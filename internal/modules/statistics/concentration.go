package statistics

import (
	"github.com/aristath/folio/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// Concentration measures how evenly value is spread across held positions
// using the Herfindahl-Hirschman index of their weights.
//
// Weights must already be assigned. With no value in the portfolio every
// figure is zero.
func Concentration(holdings []domain.EnrichedHolding) domain.Concentration {
	weights := make([]float64, 0, len(holdings))
	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if !h.IsHeld() {
			continue
		}
		weights = append(weights, h.Weight.InexactFloat64())
		tickers = append(tickers, h.Ticker)
	}
	if len(weights) == 0 || floats.Sum(weights) == 0 {
		return domain.Concentration{}
	}

	hhi := floats.Dot(weights, weights)
	top := floats.MaxIdx(weights)

	return domain.Concentration{
		HHI:               hhi,
		EffectiveHoldings: 1 / hhi,
		LargestWeight:     weights[top],
		LargestTicker:     tickers[top],
	}
}
