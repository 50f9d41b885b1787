// Package enrichment joins raw instruments and holdings against the reference
// dimension tables.
//
// Both passes are pure: they never fail on missing reference rows. A key that
// does not resolve degrades to a fallback label and is reported as a
// domain.DataGap so that the caller can log it.
package enrichment

import "github.com/aristath/folio/internal/domain"

// index is a hash lookup over every reference dimension table
type index struct {
	markets      map[int64]domain.Market
	assetClasses map[int64]domain.AssetClass
	sectors      map[int64]domain.Sector
	industries   map[int64]domain.Industry
	currencies   map[int64]domain.Currency
	regions      map[int64]domain.Region
	countries    map[int64]domain.Country
}

func newIndex(ref domain.ReferenceData) *index {
	idx := &index{
		markets:      make(map[int64]domain.Market, len(ref.Markets)),
		assetClasses: make(map[int64]domain.AssetClass, len(ref.AssetClasses)),
		sectors:      make(map[int64]domain.Sector, len(ref.Sectors)),
		industries:   make(map[int64]domain.Industry, len(ref.Industries)),
		currencies:   make(map[int64]domain.Currency, len(ref.Currencies)),
		regions:      make(map[int64]domain.Region, len(ref.Regions)),
		countries:    make(map[int64]domain.Country, len(ref.Countries)),
	}
	for _, m := range ref.Markets {
		idx.markets[m.ID] = m
	}
	for _, a := range ref.AssetClasses {
		idx.assetClasses[a.ID] = a
	}
	for _, s := range ref.Sectors {
		idx.sectors[s.ID] = s
	}
	for _, i := range ref.Industries {
		idx.industries[i.ID] = i
	}
	for _, c := range ref.Currencies {
		idx.currencies[c.ID] = c
	}
	for _, r := range ref.Regions {
		idx.regions[r.ID] = r
	}
	for _, c := range ref.Countries {
		idx.countries[c.ID] = c
	}
	return idx
}
