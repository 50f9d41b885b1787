package testing

import (
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/shopspring/decimal"
)

// NewReferenceFixture returns a small but complete reference data set:
// three markets, three asset classes (Bonds has no holdings), three sectors,
// four industries, three currencies, two regions, four countries and five
// instruments.
func NewReferenceFixture() domain.ReferenceData {
	return domain.ReferenceData{
		Markets: []domain.Market{
			{ID: 1, Code: "XNAS", Name: "NASDAQ"},
			{ID: 2, Code: "XETR", Name: "Xetra"},
			{ID: 3, Code: "XLON", Name: "London Stock Exchange"},
		},
		AssetClasses: []domain.AssetClass{
			{ID: 1, Name: "Equities", Description: "Single stocks"},
			{ID: 2, Name: "ETF", Description: "Exchange traded funds"},
			{ID: 3, Name: "Bonds"},
		},
		Sectors: []domain.Sector{
			{ID: 1, Name: "Technology"},
			{ID: 2, Name: "Financials"},
			{ID: 3, Name: "Diversified"},
		},
		Industries: []domain.Industry{
			{ID: 1, SectorID: 1, Name: "Software"},
			{ID: 2, SectorID: 1, Name: "Semiconductors"},
			{ID: 3, SectorID: 2, Name: "Banks"},
			{ID: 4, SectorID: 3, Name: "Broad Market"},
		},
		Currencies: []domain.Currency{
			{ID: 1, Code: "USD", Name: "US Dollar"},
			{ID: 2, Code: "EUR", Name: "Euro"},
			{ID: 3, Code: "GBP", Name: "Pound Sterling"},
		},
		Regions: []domain.Region{
			{ID: 1, Name: "North America"},
			{ID: 2, Name: "Europe"},
		},
		Countries: []domain.Country{
			{ID: 1, RegionID: 1, Code: "US", Name: "United States"},
			{ID: 2, RegionID: 2, Code: "DE", Name: "Germany"},
			{ID: 3, RegionID: 2, Code: "IE", Name: "Ireland"},
			{ID: 4, RegionID: 2, Code: "GB", Name: "United Kingdom"},
		},
		Instruments: []domain.Instrument{
			{ID: 1, Ticker: "MSFT", Name: "Microsoft", ISIN: "US5949181045", MarketID: 1, AssetClassID: 1, CurrencyID: 1, IndustryID: 1, CountryID: 1},
			{ID: 2, Ticker: "NVDA", Name: "NVIDIA", ISIN: "US67066G1040", MarketID: 1, AssetClassID: 1, CurrencyID: 1, IndustryID: 2, CountryID: 1},
			{ID: 3, Ticker: "SAP", Name: "SAP", ISIN: "DE0007164600", MarketID: 2, AssetClassID: 1, CurrencyID: 2, IndustryID: 1, CountryID: 2},
			{ID: 4, Ticker: "VWCE", Name: "Vanguard FTSE All-World UCITS ETF", ISIN: "IE00BK5BQT80", MarketID: 2, AssetClassID: 2, CurrencyID: 2, IndustryID: 4, CountryID: 3},
			{ID: 5, Ticker: "HSBA", Name: "HSBC Holdings", ISIN: "GB0005405286", MarketID: 3, AssetClassID: 1, CurrencyID: 3, IndustryID: 3, CountryID: 4},
		},
	}
}

// NewPriceFixture returns latest prices for every fixture instrument
func NewPriceFixture() domain.PriceMap {
	return domain.PriceMap{
		"MSFT": decimal.NewFromInt(400),
		"NVDA": decimal.NewFromInt(120),
		"SAP":  decimal.NewFromInt(200),
		"VWCE": decimal.NewFromInt(110),
		"HSBA": decimal.NewFromInt(7),
	}
}

// NewHoldingFixtures returns positions worth 11,400 in total at fixture prices:
// MSFT 4000, NVDA 2400, SAP 1000, VWCE 3300, HSBA 700.
func NewHoldingFixtures() []domain.Holding {
	date := func(s string) time.Time {
		t, _ := time.Parse(time.DateOnly, s)
		return t
	}
	return []domain.Holding{
		{ID: "h1", Ticker: "MSFT", Quantity: decimal.NewFromInt(10), PurchaseDate: date("2021-03-15"), PurchasePrice: decimal.NewFromInt(300)},
		{ID: "h2", Ticker: "NVDA", Quantity: decimal.NewFromInt(20), PurchaseDate: date("2022-06-01"), PurchasePrice: decimal.NewFromInt(50)},
		{ID: "h3", Ticker: "SAP", Quantity: decimal.NewFromInt(5), PurchaseDate: date("2023-01-10"), PurchasePrice: decimal.NewFromInt(220)},
		{ID: "h4", Ticker: "VWCE", Quantity: decimal.NewFromInt(30), PurchaseDate: date("2020-11-02"), PurchasePrice: decimal.NewFromInt(100)},
		{ID: "h5", Ticker: "HSBA", Quantity: decimal.NewFromInt(100), PurchaseDate: date("2019-05-20"), PurchasePrice: decimal.RequireFromString("6.5")},
	}
}

// Dec parses a decimal literal, panicking on malformed input
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
