package domain

import "github.com/shopspring/decimal"

// AllocationBucket aggregates every holding that shares one dimension key.
//
// CurrentValue is the unrounded sum of the members' market values and
// AllocationPercent is CurrentValue / total portfolio value * 100.
type AllocationBucket struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Code              string          `json:"code,omitempty"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	AllocationPercent decimal.Decimal `json:"allocation_percent"`
	HoldingCount      int             `json:"holding_count"`
}

// IndustryBucket is an industry allocation carrying its parent sector
type IndustryBucket struct {
	AllocationBucket
	SectorID   int64  `json:"sector_id"`
	SectorName string `json:"sector_name"`
}

// CountryBucket is a country allocation.
//
// AllocationPercent is relative to the whole portfolio like every other
// bucket. AllocationRegionPercent is relative to the parent region's value
// only, so the countries of one region sum to 100 while the countries of the
// whole portfolio sum to the portfolio-wide share.
type CountryBucket struct {
	AllocationBucket
	RegionID                int64           `json:"region_id"`
	RegionName              string          `json:"region_name"`
	AllocationRegionPercent decimal.Decimal `json:"allocation_region_percent"`
}

// RegionBucket is a region allocation owning its member countries
type RegionBucket struct {
	AllocationBucket
	Countries []CountryBucket `json:"countries"`
}

// Statistics are cardinality counts over holdings with a positive quantity
type Statistics struct {
	PositionCount   int `json:"position_count"`
	MarketCount     int `json:"market_count"`
	AssetClassCount int `json:"asset_class_count"`
	SectorCount     int `json:"sector_count"`
	TrackerCount    int `json:"tracker_count"`
	NonTrackerCount int `json:"non_tracker_count"`
}

// Concentration describes how evenly value is spread across holdings
type Concentration struct {
	HHI               float64 `json:"hhi"`                // sum of squared weights, 0..1
	EffectiveHoldings float64 `json:"effective_holdings"` // 1/HHI
	LargestWeight     float64 `json:"largest_weight"`
	LargestTicker     string  `json:"largest_ticker,omitempty"`
}

// Snapshot is the complete, immutable result of one computation. Nothing in
// the engine mutates a Snapshot after it is returned.
type Snapshot struct {
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalCostBasis  decimal.Decimal `json:"total_cost_basis"`
	TotalProfitLoss decimal.Decimal `json:"total_profit_loss"`

	Holdings []EnrichedHolding `json:"holdings"`

	AssetClasses []AllocationBucket `json:"asset_classes"`
	Sectors      []AllocationBucket `json:"sectors"`
	Industries   []IndustryBucket   `json:"industries"`
	Currencies   []AllocationBucket `json:"currencies"`
	Countries    []CountryBucket    `json:"countries"`
	Regions      []RegionBucket     `json:"regions"`
	Markets      []AllocationBucket `json:"markets"`

	Statistics    Statistics    `json:"statistics"`
	Concentration Concentration `json:"concentration"`

	DataGaps []DataGap `json:"data_gaps"`
}

// Degraded reports whether the snapshot was built from incomplete data
func (s *Snapshot) Degraded() bool {
	return len(s.DataGaps) > 0
}
