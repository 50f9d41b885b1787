package handlers

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/shopspring/decimal"
)

// Views are the rounded, float-valued shapes sent to clients. Internal
// aggregation stays on unrounded decimals; rounding happens only here.

const (
	percentPlaces = 2
	pricePlaces   = 4
)

type holdingView struct {
	ID                 int64   `json:"id"`
	Ticker             string  `json:"ticker"`
	Name               string  `json:"name"`
	ISIN               string  `json:"isin,omitempty"`
	Market             string  `json:"market"`
	AssetClass         string  `json:"asset_class"`
	Currency           string  `json:"currency"`
	Industry           string  `json:"industry"`
	Sector             string  `json:"sector"`
	Country            string  `json:"country"`
	Region             string  `json:"region"`
	IsTracker          bool    `json:"is_tracker"`
	HasPrice           bool    `json:"has_price"`
	Quantity           float64 `json:"quantity"`
	CurrentPrice       float64 `json:"current_price"`
	PurchasePrice      float64 `json:"purchase_price"`
	PurchaseDate       string  `json:"purchase_date,omitempty"`
	MarketValue        float64 `json:"market_value"`
	CostBasis          float64 `json:"cost_basis"`
	ProfitLoss         float64 `json:"profit_loss"`
	ProfitLossPercent  float64 `json:"profit_loss_percent"`
	WeightPercent      float64 `json:"weight_percent"`
	MarketValueDisplay string  `json:"market_value_display"`
}

type bucketView struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Code              string  `json:"code,omitempty"`
	CurrentValue      float64 `json:"current_value"`
	AllocationPercent float64 `json:"allocation_percent"`
	HoldingCount      int     `json:"holding_count"`
}

type industryView struct {
	bucketView `json:",inline"`
	SectorID   int64  `json:"sector_id"`
	SectorName string `json:"sector_name"`
}

type countryView struct {
	bucketView              `json:",inline"`
	RegionID                int64   `json:"region_id"`
	RegionName              string  `json:"region_name"`
	AllocationRegionPercent float64 `json:"allocation_region_percent"`
}

type regionView struct {
	bucketView `json:",inline"`
	Countries  []countryView `json:"countries"`
}

type concentrationView struct {
	HHI               float64 `json:"hhi"`
	EffectiveHoldings float64 `json:"effective_holdings"`
	LargestWeight     float64 `json:"largest_weight_percent"`
	LargestTicker     string  `json:"largest_ticker,omitempty"`
}

type snapshotView struct {
	BaseCurrency      string            `json:"base_currency"`
	TotalValue        float64           `json:"total_value"`
	TotalValueDisplay string            `json:"total_value_display"`
	TotalCostBasis    float64           `json:"total_cost_basis"`
	TotalProfitLoss   float64           `json:"total_profit_loss"`
	Holdings          []holdingView     `json:"holdings"`
	AssetClasses      []bucketView      `json:"asset_classes"`
	Sectors           []bucketView      `json:"sectors"`
	Industries        []industryView    `json:"industries"`
	Currencies        []bucketView      `json:"currencies"`
	Countries         []countryView     `json:"countries"`
	Regions           []regionView      `json:"regions"`
	Markets           []bucketView      `json:"markets"`
	Statistics        domain.Statistics `json:"statistics"`
	Concentration     concentrationView `json:"concentration"`
	DataGaps          []domain.DataGap  `json:"data_gaps"`
	Degraded          bool              `json:"degraded"`
}

func money(d decimal.Decimal) float64 {
	return formulas.DisplayFloat(d, formulas.MoneyPlaces)
}

func percent(d decimal.Decimal) float64 {
	return formulas.DisplayFloat(d, percentPlaces)
}

func newHoldingView(h domain.EnrichedHolding) holdingView {
	v := holdingView{
		ID:                 h.ID,
		Ticker:             h.Ticker,
		Name:               h.Name,
		ISIN:               h.ISIN,
		Market:             h.MarketName,
		AssetClass:         h.AssetClass,
		Currency:           h.CurrencyCode,
		Industry:           h.IndustryName,
		Sector:             h.SectorName,
		Country:            h.CountryName,
		Region:             h.RegionName,
		IsTracker:          h.IsTracker,
		HasPrice:           h.HasPrice,
		Quantity:           h.Quantity.InexactFloat64(),
		CurrentPrice:       formulas.DisplayFloat(h.CurrentPrice, pricePlaces),
		PurchasePrice:      formulas.DisplayFloat(h.PurchasePrice, pricePlaces),
		MarketValue:        money(h.MarketValue),
		CostBasis:          money(h.CostBasis),
		ProfitLoss:         money(h.ProfitLossAbsolute),
		ProfitLossPercent:  percent(h.ProfitLossPercent.Shift(2)),
		WeightPercent:      percent(h.Weight.Shift(2)),
		MarketValueDisplay: formulas.FormatCurrency(h.MarketValue, h.CurrencyCode),
	}
	if !h.PurchaseDate.IsZero() {
		v.PurchaseDate = h.PurchaseDate.Format("2006-01-02")
	}
	return v
}

func newHoldingViews(holdings []domain.EnrichedHolding) []holdingView {
	out := make([]holdingView, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, newHoldingView(h))
	}
	return out
}

func newBucketView(b domain.AllocationBucket) bucketView {
	return bucketView{
		ID:                b.ID,
		Name:              b.Name,
		Code:              b.Code,
		CurrentValue:      money(b.CurrentValue),
		AllocationPercent: percent(b.AllocationPercent),
		HoldingCount:      b.HoldingCount,
	}
}

func newBucketViews(buckets []domain.AllocationBucket) []bucketView {
	out := make([]bucketView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, newBucketView(b))
	}
	return out
}

func newIndustryViews(buckets []domain.IndustryBucket) []industryView {
	out := make([]industryView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, industryView{
			bucketView: newBucketView(b.AllocationBucket),
			SectorID:   b.SectorID,
			SectorName: b.SectorName,
		})
	}
	return out
}

func newCountryViews(buckets []domain.CountryBucket) []countryView {
	out := make([]countryView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, countryView{
			bucketView:              newBucketView(b.AllocationBucket),
			RegionID:                b.RegionID,
			RegionName:              b.RegionName,
			AllocationRegionPercent: percent(b.AllocationRegionPercent),
		})
	}
	return out
}

func newRegionViews(buckets []domain.RegionBucket) []regionView {
	out := make([]regionView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, regionView{
			bucketView: newBucketView(b.AllocationBucket),
			Countries:  newCountryViews(b.Countries),
		})
	}
	return out
}

func newSnapshotView(s *domain.Snapshot, baseCurrency string) snapshotView {
	return snapshotView{
		BaseCurrency:      baseCurrency,
		TotalValue:        money(s.TotalValue),
		TotalValueDisplay: formulas.FormatCurrency(s.TotalValue, baseCurrency),
		TotalCostBasis:    money(s.TotalCostBasis),
		TotalProfitLoss:   money(s.TotalProfitLoss),
		Holdings:          newHoldingViews(s.Holdings),
		AssetClasses:      newBucketViews(s.AssetClasses),
		Sectors:           newBucketViews(s.Sectors),
		Industries:        newIndustryViews(s.Industries),
		Currencies:        newBucketViews(s.Currencies),
		Countries:         newCountryViews(s.Countries),
		Regions:           newRegionViews(s.Regions),
		Markets:           newBucketViews(s.Markets),
		Statistics:        s.Statistics,
		Concentration: concentrationView{
			HHI:               formulas.Round(s.Concentration.HHI, 4),
			EffectiveHoldings: formulas.Round(s.Concentration.EffectiveHoldings, 2),
			LargestWeight:     formulas.Round(s.Concentration.LargestWeight*100, percentPlaces),
			LargestTicker:     s.Concentration.LargestTicker,
		},
		DataGaps: s.DataGaps,
		Degraded: s.Degraded(),
	}
}
