package enrichment

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/shopspring/decimal"
)

// EnrichInstruments resolves every instrument against the reference tables and
// the price lookup. The output has one entry per input instrument, in input
// order.
//
// A missing price yields CurrentPrice 0 and HasPrice false. A key that does
// not resolve is zeroed and its name set to the Unknown* label; the sector and
// region are resolved through the industry and country respectively. prices
// may be nil.
func EnrichInstruments(ref domain.ReferenceData, prices domain.PriceLookup) ([]domain.EnrichedInstrument, []domain.DataGap) {
	idx := newIndex(ref)
	out := make([]domain.EnrichedInstrument, 0, len(ref.Instruments))
	var gaps []domain.DataGap

	for _, inst := range ref.Instruments {
		e, instGaps := idx.enrich(inst, prices)
		out = append(out, e)
		gaps = append(gaps, instGaps...)
	}

	return out, gaps
}

func (idx *index) enrich(inst domain.Instrument, prices domain.PriceLookup) (domain.EnrichedInstrument, []domain.DataGap) {
	e := domain.EnrichedInstrument{
		ID:           inst.ID,
		Ticker:       inst.Ticker,
		Name:         inst.Name,
		ISIN:         inst.ISIN,
		MarketName:   domain.UnknownMarket,
		AssetClass:   domain.UnknownAssetClass,
		CurrencyCode: domain.UnknownCurrency,
		IndustryName: domain.UnknownIndustry,
		SectorName:   domain.UnknownSector,
		CountryName:  domain.UnknownCountry,
		RegionName:   domain.UnknownRegion,
		CurrentPrice: decimal.Zero,
	}

	var gaps []domain.DataGap
	unresolved := func(dim domain.Dimension, key int64) {
		gaps = append(gaps, domain.DataGap{
			Kind:      domain.GapUnresolvedKey,
			Ticker:    inst.Ticker,
			Dimension: dim,
			Key:       key,
		})
	}

	if m, ok := idx.markets[inst.MarketID]; ok {
		e.MarketID, e.MarketName = m.ID, m.Name
	} else {
		unresolved(domain.DimensionMarket, inst.MarketID)
	}

	if a, ok := idx.assetClasses[inst.AssetClassID]; ok {
		e.AssetClassID, e.AssetClass = a.ID, a.Name
		e.IsTracker = domain.IsTrackerAssetClass(a.Name)
	} else {
		unresolved(domain.DimensionAssetClass, inst.AssetClassID)
	}

	if c, ok := idx.currencies[inst.CurrencyID]; ok {
		e.CurrencyID, e.CurrencyCode = c.ID, c.Code
	} else {
		unresolved(domain.DimensionCurrency, inst.CurrencyID)
	}

	if ind, ok := idx.industries[inst.IndustryID]; ok {
		e.IndustryID, e.IndustryName = ind.ID, ind.Name
		if s, ok := idx.sectors[ind.SectorID]; ok {
			e.SectorID, e.SectorName = s.ID, s.Name
		} else {
			unresolved(domain.DimensionSector, ind.SectorID)
		}
	} else {
		unresolved(domain.DimensionIndustry, inst.IndustryID)
	}

	if c, ok := idx.countries[inst.CountryID]; ok {
		e.CountryID, e.CountryName = c.ID, c.Name
		if r, ok := idx.regions[c.RegionID]; ok {
			e.RegionID, e.RegionName = r.ID, r.Name
		} else {
			unresolved(domain.DimensionRegion, c.RegionID)
		}
	} else {
		unresolved(domain.DimensionCountry, inst.CountryID)
	}

	if prices != nil {
		if p, ok := prices.Price(inst.Ticker); ok {
			e.CurrentPrice, e.HasPrice = p, true
		}
	}
	if !e.HasPrice {
		gaps = append(gaps, domain.DataGap{Kind: domain.GapMissingPrice, Ticker: inst.Ticker})
	}

	return e, gaps
}
