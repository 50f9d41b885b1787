// Package statistics derives dashboard-level counts and concentration figures
// from enriched holdings.
package statistics

import (
	"github.com/aristath/folio/internal/domain"
)

// Summarize counts the held positions (quantity > 0) and the distinct markets,
// asset classes and sectors they span, plus tracker and non-tracker positions.
// Unresolved (zero) keys do not count as a distinct value.
func Summarize(holdings []domain.EnrichedHolding) domain.Statistics {
	markets := make(map[int64]struct{})
	assetClasses := make(map[int64]struct{})
	sectors := make(map[int64]struct{})

	var stats domain.Statistics
	for _, h := range holdings {
		if !h.IsHeld() {
			continue
		}
		stats.PositionCount++

		if h.MarketID != 0 {
			markets[h.MarketID] = struct{}{}
		}
		if h.AssetClassID != 0 {
			assetClasses[h.AssetClassID] = struct{}{}
		}
		if h.SectorID != 0 {
			sectors[h.SectorID] = struct{}{}
		}

		if h.IsTracker {
			stats.TrackerCount++
		} else {
			stats.NonTrackerCount++
		}
	}

	stats.MarketCount = len(markets)
	stats.AssetClassCount = len(assetClasses)
	stats.SectorCount = len(sectors)

	return stats
}
