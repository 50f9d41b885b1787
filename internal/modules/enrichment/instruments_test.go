package enrichment

import (
	"testing"

	"github.com/aristath/folio/internal/domain"
	testingpkg "github.com/aristath/folio/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichInstruments_ResolvesEveryDimension(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()

	enriched, gaps := EnrichInstruments(ref, testingpkg.NewPriceFixture())

	require.Len(t, enriched, len(ref.Instruments))
	assert.Empty(t, gaps)

	vwce := enriched[3]
	assert.Equal(t, "VWCE", vwce.Ticker)
	assert.Equal(t, "Xetra", vwce.MarketName)
	assert.Equal(t, "ETF", vwce.AssetClass)
	assert.Equal(t, "EUR", vwce.CurrencyCode)
	assert.Equal(t, "Broad Market", vwce.IndustryName)
	assert.Equal(t, int64(3), vwce.SectorID)
	assert.Equal(t, "Diversified", vwce.SectorName)
	assert.Equal(t, "Ireland", vwce.CountryName)
	assert.Equal(t, int64(2), vwce.RegionID)
	assert.Equal(t, "Europe", vwce.RegionName)
	assert.True(t, vwce.CurrentPrice.Equal(testingpkg.Dec("110")))
	assert.True(t, vwce.HasPrice)
	assert.True(t, vwce.IsTracker)

	assert.False(t, enriched[0].IsTracker, "equities are not trackers")
}

func TestEnrichInstruments_PreservesInputOrder(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()
	ref.Instruments[0], ref.Instruments[4] = ref.Instruments[4], ref.Instruments[0]

	enriched, _ := EnrichInstruments(ref, testingpkg.NewPriceFixture())

	tickers := make([]string, 0, len(enriched))
	for _, e := range enriched {
		tickers = append(tickers, e.Ticker)
	}
	assert.Equal(t, []string{"HSBA", "NVDA", "SAP", "VWCE", "MSFT"}, tickers)
}

func TestEnrichInstruments_MissingPrice(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()
	prices := testingpkg.NewPriceFixture()
	delete(prices, "SAP")

	enriched, gaps := EnrichInstruments(ref, prices)

	sap := enriched[2]
	assert.True(t, sap.CurrentPrice.IsZero())
	assert.False(t, sap.HasPrice)
	require.Len(t, gaps, 1)
	assert.Equal(t, domain.DataGap{Kind: domain.GapMissingPrice, Ticker: "SAP"}, gaps[0])
}

func TestEnrichInstruments_NilPriceLookup(t *testing.T) {
	enriched, gaps := EnrichInstruments(testingpkg.NewReferenceFixture(), nil)

	for _, e := range enriched {
		assert.True(t, e.CurrentPrice.IsZero())
	}
	assert.Len(t, gaps, 5)
}

func TestEnrichInstruments_UnresolvedKeysDegrade(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()
	ref.Instruments[0].MarketID = 42
	ref.Instruments[0].AssetClassID = 0
	ref.Instruments[0].CurrencyID = 77
	ref.Instruments[0].IndustryID = 99
	ref.Instruments[0].CountryID = 88

	enriched, gaps := EnrichInstruments(ref, testingpkg.NewPriceFixture())

	msft := enriched[0]
	assert.Equal(t, int64(0), msft.MarketID)
	assert.Equal(t, domain.UnknownMarket, msft.MarketName)
	assert.Equal(t, domain.UnknownAssetClass, msft.AssetClass)
	assert.False(t, msft.IsTracker)
	assert.Equal(t, domain.UnknownCurrency, msft.CurrencyCode)
	assert.Equal(t, domain.UnknownIndustry, msft.IndustryName)
	assert.Equal(t, int64(0), msft.SectorID)
	assert.Equal(t, domain.UnknownSector, msft.SectorName)
	assert.Equal(t, domain.UnknownCountry, msft.CountryName)
	assert.Equal(t, domain.UnknownRegion, msft.RegionName)

	assert.ElementsMatch(t, []domain.DataGap{
		{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionMarket, Key: 42},
		{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionAssetClass, Key: 0},
		{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionCurrency, Key: 77},
		{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionIndustry, Key: 99},
		{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionCountry, Key: 88},
	}, gaps)

	// The rest of the batch is unaffected
	assert.Equal(t, "NASDAQ", enriched[1].MarketName)
}

func TestEnrichInstruments_UnresolvedParentDimension(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()
	ref.Industries[0].SectorID = 50 // Software -> missing sector
	ref.Countries[0].RegionID = 60  // United States -> missing region

	enriched, gaps := EnrichInstruments(ref, testingpkg.NewPriceFixture())

	msft := enriched[0]
	assert.Equal(t, "Software", msft.IndustryName)
	assert.Equal(t, domain.UnknownSector, msft.SectorName)
	assert.Equal(t, "United States", msft.CountryName)
	assert.Equal(t, domain.UnknownRegion, msft.RegionName)
	assert.Contains(t, gaps, domain.DataGap{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionSector, Key: 50})
	assert.Contains(t, gaps, domain.DataGap{Kind: domain.GapUnresolvedKey, Ticker: "MSFT", Dimension: domain.DimensionRegion, Key: 60})
}

func TestEnrichInstruments_DoesNotMutateInput(t *testing.T) {
	ref := testingpkg.NewReferenceFixture()
	before := testingpkg.NewReferenceFixture()

	_, _ = EnrichInstruments(ref, testingpkg.NewPriceFixture())

	assert.Equal(t, before, ref)
}
