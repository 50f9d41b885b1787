package allocation

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/shopspring/decimal"
)

// ByAssetClass aggregates holdings by asset class
func ByAssetClass(holdings []domain.EnrichedHolding, assetClasses []domain.AssetClass, total decimal.Decimal) []domain.AllocationBucket {
	rows := make([]row, 0, len(assetClasses))
	for _, a := range assetClasses {
		rows = append(rows, row{id: a.ID, name: a.Name})
	}
	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.AssetClassID })
	return buildBuckets(rows, groups, total)
}

// BySector aggregates holdings by the sector of their industry
func BySector(holdings []domain.EnrichedHolding, sectors []domain.Sector, total decimal.Decimal) []domain.AllocationBucket {
	rows := make([]row, 0, len(sectors))
	for _, s := range sectors {
		rows = append(rows, row{id: s.ID, name: s.Name})
	}
	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.SectorID })
	return buildBuckets(rows, groups, total)
}

// ByIndustry aggregates holdings by industry. Each bucket carries its parent
// sector; its percentage is relative to the whole portfolio.
func ByIndustry(holdings []domain.EnrichedHolding, industries []domain.Industry, sectors []domain.Sector, total decimal.Decimal) []domain.IndustryBucket {
	sectorNames := make(map[int64]string, len(sectors))
	for _, s := range sectors {
		sectorNames[s.ID] = s.Name
	}

	rows := make([]row, 0, len(industries))
	parent := make(map[int64]int64, len(industries))
	for _, ind := range industries {
		rows = append(rows, row{id: ind.ID, name: ind.Name})
		parent[ind.ID] = ind.SectorID
	}

	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.IndustryID })
	buckets := buildBuckets(rows, groups, total)

	out := make([]domain.IndustryBucket, 0, len(buckets))
	for _, b := range buckets {
		sectorID := parent[b.ID]
		sectorName, ok := sectorNames[sectorID]
		if !ok {
			sectorID, sectorName = 0, domain.UnknownSector
		}
		out = append(out, domain.IndustryBucket{
			AllocationBucket: b,
			SectorID:         sectorID,
			SectorName:       sectorName,
		})
	}
	return out
}

// ByCurrency aggregates holdings by trading currency. The bucket name is the
// ISO code.
func ByCurrency(holdings []domain.EnrichedHolding, currencies []domain.Currency, total decimal.Decimal) []domain.AllocationBucket {
	rows := make([]row, 0, len(currencies))
	for _, c := range currencies {
		rows = append(rows, row{id: c.ID, name: c.Code, code: c.Code})
	}
	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.CurrencyID })
	return buildBuckets(rows, groups, total)
}

// ByMarket aggregates holdings by market
func ByMarket(holdings []domain.EnrichedHolding, markets []domain.Market, total decimal.Decimal) []domain.AllocationBucket {
	rows := make([]row, 0, len(markets))
	for _, m := range markets {
		rows = append(rows, row{id: m.ID, name: m.Name, code: m.Code})
	}
	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.MarketID })
	return buildBuckets(rows, groups, total)
}
