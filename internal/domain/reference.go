// Package domain provides core domain models and types.
//
// Reference dimension rows, instruments and holdings are the read-only inputs
// of a snapshot computation. Enriched records, allocation buckets and the
// snapshot itself are its outputs. Identifiers are positive; zero means the
// key is unset and never resolves.
package domain

// Market is an exchange or trading venue
type Market struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// AssetClass classifies instruments (Equities, ETF, Bonds, ...)
type AssetClass struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Sector is the parent of Industry
type Sector struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Industry belongs to a Sector
type Industry struct {
	ID       int64  `json:"id"`
	SectorID int64  `json:"sector_id"`
	Name     string `json:"name"`
}

// Currency is an ISO 4217 currency
type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Region is the parent of Country
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Country belongs to a Region
type Country struct {
	ID       int64  `json:"id"`
	RegionID int64  `json:"region_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
}

// Dimension names a classification axis
type Dimension string

const (
	DimensionMarket     Dimension = "market"
	DimensionAssetClass Dimension = "asset_class"
	DimensionSector     Dimension = "sector"
	DimensionIndustry   Dimension = "industry"
	DimensionCurrency   Dimension = "currency"
	DimensionCountry    Dimension = "country"
	DimensionRegion     Dimension = "region"
)

// Dimensions lists every classification axis in display order
var Dimensions = []Dimension{
	DimensionAssetClass,
	DimensionSector,
	DimensionIndustry,
	DimensionCurrency,
	DimensionCountry,
	DimensionRegion,
	DimensionMarket,
}

// ParseDimension maps a path segment or flag value to a Dimension.
func ParseDimension(s string) (Dimension, bool) {
	switch s {
	case "market", "markets":
		return DimensionMarket, true
	case "asset_class", "asset-class", "asset_classes", "asset-classes":
		return DimensionAssetClass, true
	case "sector", "sectors":
		return DimensionSector, true
	case "industry", "industries":
		return DimensionIndustry, true
	case "currency", "currencies":
		return DimensionCurrency, true
	case "country", "countries":
		return DimensionCountry, true
	case "region", "regions", "geography":
		return DimensionRegion, true
	}
	return "", false
}

// ReferenceData bundles every reference dimension table together with the
// instrument universe. It is loaded once per snapshot computation.
type ReferenceData struct {
	Markets      []Market     `json:"markets"`
	AssetClasses []AssetClass `json:"asset_classes"`
	Sectors      []Sector     `json:"sectors"`
	Industries   []Industry   `json:"industries"`
	Currencies   []Currency   `json:"currencies"`
	Regions      []Region     `json:"regions"`
	Countries    []Country    `json:"countries"`
	Instruments  []Instrument `json:"instruments"`
}
