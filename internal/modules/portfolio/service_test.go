package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aristath/folio/internal/domain"
	testingpkg "github.com/aristath/folio/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ref      domain.ReferenceData
	holdings []domain.Holding
	prices   domain.PriceMap
	err      error
}

func (f *fakeSource) LoadReferenceData(ctx context.Context) (domain.ReferenceData, error) {
	return f.ref, f.err
}

func (f *fakeSource) LoadHoldings(ctx context.Context) ([]domain.Holding, error) {
	return f.holdings, nil
}

func (f *fakeSource) LoadPrices(ctx context.Context) (domain.PriceMap, error) {
	return f.prices, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ref:      testingpkg.NewReferenceFixture(),
		holdings: testingpkg.NewHoldingFixtures(),
		prices:   testingpkg.NewPriceFixture(),
	}
}

func TestService_Snapshot(t *testing.T) {
	service := NewService(newFakeSource(), Options{Parallel: true}, zerolog.Nop())

	snap, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	assertDecimal(t, "11400", snap.TotalValue)
	assert.Len(t, snap.Holdings, 5)
}

func TestService_LogsDataGaps(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.WarnLevel)

	source := newFakeSource()
	source.ref.Instruments[0].MarketID = 9

	service := NewService(source, Options{}, log)
	_, err := service.Snapshot(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "portfolio", entry["service"])
	assert.Equal(t, "unresolved_key", entry["kind"])
	assert.Equal(t, "MSFT", entry["ticker"])
	assert.Equal(t, "market", entry["dimension"])
	assert.Equal(t, float64(9), entry["key"])
}

func TestService_LoadError(t *testing.T) {
	source := newFakeSource()
	source.err = errors.New("disk on fire")

	service := NewService(source, Options{}, zerolog.Nop())
	_, err := service.Snapshot(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load reference data")
}

func TestService_InvalidReferenceData(t *testing.T) {
	source := newFakeSource()
	source.ref.Currencies[0].ID = 0

	service := NewService(source, Options{}, zerolog.Nop())
	_, err := service.Snapshot(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidReferenceData)
}
