package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/aristath/folio/internal/domain"
	testingpkg "github.com/aristath/folio/internal/testing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureInput() Input {
	return Input{
		Reference: testingpkg.NewReferenceFixture(),
		Holdings:  testingpkg.NewHoldingFixtures(),
		Prices:    testingpkg.NewPriceFixture(),
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, testingpkg.Dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestBuildSnapshot(t *testing.T) {
	snap, err := BuildSnapshot(fixtureInput(), Options{})
	require.NoError(t, err)

	assertDecimal(t, "11400", snap.TotalValue)
	assertDecimal(t, "8750", snap.TotalCostBasis)
	assertDecimal(t, "2650", snap.TotalProfitLoss)
	require.Len(t, snap.Holdings, 5)
	assert.False(t, snap.Degraded())
	assert.Empty(t, snap.DataGaps)

	assert.Len(t, snap.AssetClasses, 2)
	assert.Len(t, snap.Sectors, 3)
	assert.Len(t, snap.Industries, 4)
	assert.Len(t, snap.Currencies, 3)
	assert.Len(t, snap.Countries, 4)
	assert.Len(t, snap.Regions, 2)
	assert.Len(t, snap.Markets, 3)

	assert.Equal(t, domain.Statistics{
		PositionCount:   5,
		MarketCount:     3,
		AssetClassCount: 2,
		SectorCount:     3,
		TrackerCount:    1,
		NonTrackerCount: 4,
	}, snap.Statistics)

	assert.Equal(t, "MSFT", snap.Concentration.LargestTicker)
	assert.InDelta(t, 4000.0/11400.0, snap.Concentration.LargestWeight, 1e-12)
}

func TestBuildSnapshot_WeightsSumToOne(t *testing.T) {
	snap, err := BuildSnapshot(fixtureInput(), Options{})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, h := range snap.Holdings {
		sum = sum.Add(h.Weight)
	}
	assert.InDelta(t, 1.0, sum.InexactFloat64(), 1e-9)
	assert.InDelta(t, 0.350877, snap.Holdings[0].Weight.InexactFloat64(), 1e-6)
}

func TestBuildSnapshot_Idempotent(t *testing.T) {
	first, err := BuildSnapshot(fixtureInput(), Options{})
	require.NoError(t, err)
	second, err := BuildSnapshot(fixtureInput(), Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildSnapshot_ParallelMatchesSequential(t *testing.T) {
	sequential, err := BuildSnapshot(fixtureInput(), Options{Parallel: false})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		parallel, err := BuildSnapshot(fixtureInput(), Options{Parallel: true})
		require.NoError(t, err)
		assert.Equal(t, sequential, parallel)
	}
}

func TestBuildSnapshot_DoesNotMutateInput(t *testing.T) {
	in := fixtureInput()
	before := fixtureInput()

	_, err := BuildSnapshot(in, Options{Parallel: true})
	require.NoError(t, err)

	assert.Equal(t, before.Reference, in.Reference)
	assert.Equal(t, before.Holdings, in.Holdings)
}

func TestBuildSnapshot_EmptyHoldings(t *testing.T) {
	in := fixtureInput()
	in.Holdings = nil

	snap, err := BuildSnapshot(in, Options{Parallel: true})
	require.NoError(t, err)

	assert.True(t, snap.TotalValue.IsZero())
	assert.NotNil(t, snap.Holdings)
	assert.Empty(t, snap.Holdings)
	assert.Empty(t, snap.AssetClasses)
	assert.Empty(t, snap.Sectors)
	assert.Empty(t, snap.Industries)
	assert.Empty(t, snap.Currencies)
	assert.Empty(t, snap.Countries)
	assert.Empty(t, snap.Regions)
	assert.Empty(t, snap.Markets)
	assert.Equal(t, domain.Statistics{}, snap.Statistics)
	assert.Equal(t, domain.Concentration{}, snap.Concentration)
}

func TestBuildSnapshot_Degraded(t *testing.T) {
	in := fixtureInput()
	in.Reference.Instruments[2].CountryID = 42
	delete(in.Prices.(domain.PriceMap), "HSBA")
	in.Holdings = append(in.Holdings, domain.Holding{Ticker: "AAPL", Quantity: testingpkg.Dec("1")})

	snap, err := BuildSnapshot(in, Options{Parallel: true})
	require.NoError(t, err)

	assert.True(t, snap.Degraded())
	assert.Equal(t, []domain.DataGap{
		{Kind: domain.GapUnmatchedHolding, Ticker: "AAPL"},
		{Kind: domain.GapMissingPrice, Ticker: "HSBA"},
		{Kind: domain.GapUnresolvedKey, Ticker: "SAP", Dimension: domain.DimensionCountry, Key: 42},
	}, snap.DataGaps)

	require.Len(t, snap.Holdings, 5, "the unmatched holding is dropped")
	assertDecimal(t, "10700", snap.TotalValue)

	// SAP is missing from geography only
	countryTotal := decimal.Zero
	for _, c := range snap.Countries {
		countryTotal = countryTotal.Add(c.CurrentValue)
	}
	assertDecimal(t, "9700", countryTotal)

	marketTotal := decimal.Zero
	for _, m := range snap.Markets {
		marketTotal = marketTotal.Add(m.CurrentValue)
	}
	assert.True(t, snap.TotalValue.Equal(marketTotal))
}

func TestBuildSnapshot_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"duplicate market id", func(in *Input) { in.Reference.Markets[1].ID = 1 }},
		{"empty sector name", func(in *Input) { in.Reference.Sectors[0].Name = " " }},
		{"duplicate ticker", func(in *Input) { in.Reference.Instruments[1].Ticker = "MSFT" }},
		{"negative quantity", func(in *Input) { in.Holdings[0].Quantity = testingpkg.Dec("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixtureInput()
			tt.mutate(&in)

			snap, err := BuildSnapshot(in, Options{})
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, domain.ErrInvalidReferenceData)
		})
	}
}
