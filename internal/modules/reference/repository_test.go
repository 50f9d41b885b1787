package reference

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/modules/portfolio"
	testingpkg "github.com/aristath/folio/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDataset(t *testing.T) *Dataset {
	t.Helper()
	f, err := os.Open("testdata/dataset.json")
	require.NoError(t, err)
	defer f.Close()

	ds, err := DecodeDataset(f)
	require.NoError(t, err)
	return ds
}

func newRepository(t *testing.T) *Repository {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "reference")
	t.Cleanup(cleanup)
	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestImportAndLoad_RoundTripsFixture(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, loadDataset(t)))

	ref, err := repo.LoadReferenceData(ctx)
	require.NoError(t, err)
	assert.Equal(t, testingpkg.NewReferenceFixture(), ref)

	prices, err := repo.LoadPrices(ctx)
	require.NoError(t, err)
	require.Len(t, prices, 5)
	for ticker, want := range testingpkg.NewPriceFixture() {
		assert.True(t, want.Equal(prices[ticker]), ticker)
	}

	holdings, err := repo.LoadHoldings(ctx)
	require.NoError(t, err)
	want := testingpkg.NewHoldingFixtures()
	require.Len(t, holdings, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, holdings[i].ID)
		assert.Equal(t, want[i].Ticker, holdings[i].Ticker)
		assert.True(t, want[i].Quantity.Equal(holdings[i].Quantity))
		assert.True(t, want[i].PurchasePrice.Equal(holdings[i].PurchasePrice))
		assert.True(t, want[i].PurchaseDate.Equal(holdings[i].PurchaseDate))
	}
}

func TestRepository_FeedsSnapshotService(t *testing.T) {
	repo := newRepository(t)
	require.NoError(t, repo.Import(context.Background(), loadDataset(t)))

	service := portfolio.NewService(repo, portfolio.Options{Parallel: true}, zerolog.Nop())
	snap, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, testingpkg.Dec("11400").Equal(snap.TotalValue))
	assert.Equal(t, 5, snap.Statistics.PositionCount)
}

func TestImport_ReplacesPreviousData(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Import(ctx, loadDataset(t)))

	ds := loadDataset(t)
	ds.Holdings = ds.Holdings[:1]
	ds.Holdings[0].ID = ""
	ds.Holdings[0].Ticker = " msft "
	require.NoError(t, repo.Import(ctx, ds))

	holdings, err := repo.LoadHoldings(ctx)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "MSFT", holdings[0].Ticker)
	assert.Len(t, holdings[0].ID, 36, "a generated id is assigned")
}

func TestImport_RejectsMalformedDataset(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Import(ctx, loadDataset(t)))

	tests := []struct {
		name   string
		mutate func(*Dataset)
	}{
		{"duplicate ticker", func(ds *Dataset) { ds.Instruments[1].Ticker = "msft" }},
		{"non-positive id", func(ds *Dataset) { ds.Regions[0].ID = 0 }},
		{"negative quantity", func(ds *Dataset) { ds.Holdings[0].Quantity = testingpkg.Dec("-3") }},
		{"bad purchase date", func(ds *Dataset) { ds.Holdings[0].PurchaseDate = "15/03/2021" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := loadDataset(t)
			tt.mutate(ds)

			err := repo.Import(ctx, ds)
			assert.ErrorIs(t, err, domain.ErrInvalidReferenceData)

			holdings, err := repo.LoadHoldings(ctx)
			require.NoError(t, err)
			assert.Len(t, holdings, 5, "a rejected import leaves stored data untouched")
		})
	}
}

func TestDecodeDataset_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeDataset(strings.NewReader(`{"markets": [], "planets": []}`))
	assert.Error(t, err)
}

func TestLoad_EmptyDatabase(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	ref, err := repo.LoadReferenceData(ctx)
	require.NoError(t, err)
	assert.Empty(t, ref.Instruments)

	holdings, err := repo.LoadHoldings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, holdings)
	assert.Empty(t, holdings)
}
