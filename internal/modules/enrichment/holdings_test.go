package enrichment

import (
	"testing"

	"github.com/aristath/folio/internal/domain"
	testingpkg "github.com/aristath/folio/internal/testing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrichedFixture(t *testing.T) []domain.EnrichedInstrument {
	t.Helper()
	instruments, gaps := EnrichInstruments(testingpkg.NewReferenceFixture(), testingpkg.NewPriceFixture())
	require.Empty(t, gaps)
	return instruments
}

func TestEnrichHoldings_ComputesValues(t *testing.T) {
	holdings, gaps := EnrichHoldings(testingpkg.NewHoldingFixtures(), enrichedFixture(t))

	require.Len(t, holdings, 5)
	assert.Empty(t, gaps)

	msft := holdings[0]
	assert.Equal(t, "MSFT", msft.Ticker)
	assert.Equal(t, "NASDAQ", msft.MarketName)
	assert.True(t, msft.MarketValue.Equal(testingpkg.Dec("4000")))
	assert.True(t, msft.CostBasis.Equal(testingpkg.Dec("3000")))
	assert.True(t, msft.ProfitLossAbsolute.Equal(testingpkg.Dec("1000")))
	assert.Equal(t, "0.3333333333333333", msft.ProfitLossPercent.String())
	assert.True(t, msft.Weight.IsZero(), "weight is assigned by the orchestrator")

	sap := holdings[2]
	assert.True(t, sap.ProfitLossAbsolute.Equal(testingpkg.Dec("-100")))

	hsba := holdings[4]
	assert.True(t, hsba.CostBasis.Equal(testingpkg.Dec("650")))
	assert.True(t, hsba.MarketValue.Equal(testingpkg.Dec("700")))
}

func TestEnrichHoldings_DropsUnmatchedTicker(t *testing.T) {
	raw := append(testingpkg.NewHoldingFixtures(), domain.Holding{
		Ticker:        "GHOST",
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(1),
	})

	holdings, gaps := EnrichHoldings(raw, enrichedFixture(t))

	assert.Len(t, holdings, 5)
	for _, h := range holdings {
		assert.NotEqual(t, "GHOST", h.Ticker)
	}
	assert.Equal(t, []domain.DataGap{{Kind: domain.GapUnmatchedHolding, Ticker: "GHOST"}}, gaps)
}

func TestEnrichHoldings_ZeroCostBasis(t *testing.T) {
	raw := []domain.Holding{{Ticker: "MSFT", Quantity: decimal.NewFromInt(2), PurchasePrice: decimal.Zero}}

	holdings, _ := EnrichHoldings(raw, enrichedFixture(t))

	require.Len(t, holdings, 1)
	assert.True(t, holdings[0].ProfitLossPercent.IsZero())
	assert.True(t, holdings[0].ProfitLossAbsolute.Equal(testingpkg.Dec("800")))
}

func TestEnrichHoldings_ExactDecimalArithmetic(t *testing.T) {
	instruments := []domain.EnrichedInstrument{{Ticker: "X", CurrentPrice: testingpkg.Dec("0.1")}}
	raw := []domain.Holding{{Ticker: "X", Quantity: testingpkg.Dec("3"), PurchasePrice: testingpkg.Dec("0.2")}}

	holdings, _ := EnrichHoldings(raw, instruments)

	assert.Equal(t, "0.3", holdings[0].MarketValue.String())
	assert.Equal(t, "0.6", holdings[0].CostBasis.String())
}

func TestEnrichHoldings_Empty(t *testing.T) {
	holdings, gaps := EnrichHoldings(nil, enrichedFixture(t))

	assert.NotNil(t, holdings)
	assert.Empty(t, holdings)
	assert.Empty(t, gaps)
}
