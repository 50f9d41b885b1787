package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Instrument is a tradable security with foreign keys into every reference dimension
type Instrument struct {
	ID           int64  `json:"id"`
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	ISIN         string `json:"isin,omitempty"`
	MarketID     int64  `json:"market_id"`
	AssetClassID int64  `json:"asset_class_id"`
	CurrencyID   int64  `json:"currency_id"`
	IndustryID   int64  `json:"industry_id"`
	CountryID    int64  `json:"country_id"`
}

// EnrichedInstrument is an Instrument with every dimension resolved to a
// display name, its latest known price and the tracker classification.
//
// A key that did not resolve is zero here and its name is the matching
// Unknown* fallback label.
type EnrichedInstrument struct {
	ID           int64           `json:"id"`
	Ticker       string          `json:"ticker"`
	Name         string          `json:"name"`
	ISIN         string          `json:"isin,omitempty"`
	MarketID     int64           `json:"market_id"`
	MarketName   string          `json:"market_name"`
	AssetClassID int64           `json:"asset_class_id"`
	AssetClass   string          `json:"asset_class"`
	CurrencyID   int64           `json:"currency_id"`
	CurrencyCode string          `json:"currency_code"`
	IndustryID   int64           `json:"industry_id"`
	IndustryName string          `json:"industry_name"`
	SectorID     int64           `json:"sector_id"`
	SectorName   string          `json:"sector_name"`
	CountryID    int64           `json:"country_id"`
	CountryName  string          `json:"country_name"`
	RegionID     int64           `json:"region_id"`
	RegionName   string          `json:"region_name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	HasPrice     bool            `json:"has_price"`
	IsTracker    bool            `json:"is_tracker"`
}

// Fallback labels for keys that do not resolve against their dimension table
const (
	UnknownMarket     = "Unknown Market"
	UnknownAssetClass = "Unknown Asset Class"
	UnknownCurrency   = "Unknown Currency"
	UnknownIndustry   = "Unknown Industry"
	UnknownSector     = "Unknown Sector"
	UnknownCountry    = "Unknown Country"
	UnknownRegion     = "Unknown Region"
)

// IsTrackerAssetClass reports whether an asset class name denotes a fund or
// ETF. The match is case-insensitive on "etf" or "tracker".
func IsTrackerAssetClass(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "etf") || strings.Contains(n, "tracker")
}

// PriceLookup resolves the latest known price of a ticker
type PriceLookup interface {
	Price(ticker string) (decimal.Decimal, bool)
}

// PriceMap is a PriceLookup backed by a map
type PriceMap map[string]decimal.Decimal

// Price implements PriceLookup
func (m PriceMap) Price(ticker string) (decimal.Decimal, bool) {
	p, ok := m[ticker]
	return p, ok
}
