package domain

import (
	"fmt"
	"sort"
)

// GapKind classifies a data-quality gap
type GapKind string

const (
	// GapUnresolvedKey: an instrument foreign key has no matching dimension row
	GapUnresolvedKey GapKind = "unresolved_key"
	// GapMissingPrice: no latest price is known for an instrument
	GapMissingPrice GapKind = "missing_price"
	// GapUnmatchedHolding: a holding references a ticker with no instrument
	GapUnmatchedHolding GapKind = "unmatched_holding"
)

// DataGap records one place where the snapshot degraded instead of failing
type DataGap struct {
	Kind      GapKind   `json:"kind"`
	Ticker    string    `json:"ticker"`
	Dimension Dimension `json:"dimension,omitempty"`
	Key       int64     `json:"key,omitempty"`
}

func (g DataGap) String() string {
	if g.Dimension != "" {
		return fmt.Sprintf("%s %s: %s %d", g.Ticker, g.Kind, g.Dimension, g.Key)
	}
	return fmt.Sprintf("%s %s", g.Ticker, g.Kind)
}

// SortGaps orders gaps by ticker, kind, dimension and key
func SortGaps(gaps []DataGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		a, b := gaps[i], gaps[j]
		if a.Ticker != b.Ticker {
			return a.Ticker < b.Ticker
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		return a.Key < b.Key
	})
}
