package allocation

import (
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/shopspring/decimal"
)

// Geography is the result of the two-stage geography pass
type Geography struct {
	Countries []domain.CountryBucket
	Regions   []domain.RegionBucket
}

// ByGeography aggregates holdings by country and then rolls countries up into
// their regions.
//
// Stage one sums holdings per country against the portfolio total. Stage two
// sums the finished country buckets per region and only then computes each
// country's AllocationRegionPercent, which is relative to its region's value
// rather than to the portfolio. Countries whose region does not resolve keep
// a zero region share and are not nested under any region.
func ByGeography(holdings []domain.EnrichedHolding, countries []domain.Country, regions []domain.Region, total decimal.Decimal) Geography {
	countryBuckets := aggregateCountries(holdings, countries, total)
	return aggregateRegions(countryBuckets, regions, total)
}

func aggregateCountries(holdings []domain.EnrichedHolding, countries []domain.Country, total decimal.Decimal) []domain.CountryBucket {
	rows := make([]row, 0, len(countries))
	regionOf := make(map[int64]int64, len(countries))
	for _, c := range countries {
		rows = append(rows, row{id: c.ID, name: c.Name, code: c.Code})
		regionOf[c.ID] = c.RegionID
	}

	groups := sumBy(holdings, func(h domain.EnrichedHolding) int64 { return h.CountryID })
	buckets := buildBuckets(rows, groups, total)

	out := make([]domain.CountryBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, domain.CountryBucket{
			AllocationBucket:        b,
			RegionID:                regionOf[b.ID],
			RegionName:              domain.UnknownRegion,
			AllocationRegionPercent: decimal.Zero,
		})
	}
	return out
}

func aggregateRegions(countries []domain.CountryBucket, regions []domain.Region, total decimal.Decimal) Geography {
	type regionGroup struct {
		value   decimal.Decimal
		count   int
		members []int // indexes into countries, already in value order
	}

	groups := make(map[int64]*regionGroup, len(regions))
	for _, r := range regions {
		groups[r.ID] = &regionGroup{value: decimal.Zero}
	}

	flat := make([]domain.CountryBucket, len(countries))
	copy(flat, countries)

	for i, c := range flat {
		g, ok := groups[c.RegionID]
		if !ok {
			flat[i].RegionID = 0
			continue
		}
		g.value = g.value.Add(c.CurrentValue)
		g.count += c.HoldingCount
		g.members = append(g.members, i)
	}

	out := make([]domain.RegionBucket, 0, len(regions))
	for _, r := range regions {
		g := groups[r.ID]
		if !g.value.IsPositive() {
			continue
		}

		nested := make([]domain.CountryBucket, 0, len(g.members))
		for _, i := range g.members {
			flat[i].RegionName = r.Name
			flat[i].AllocationRegionPercent = formulas.Percent(flat[i].CurrentValue, g.value)
			nested = append(nested, flat[i])
		}

		out = append(out, domain.RegionBucket{
			AllocationBucket: domain.AllocationBucket{
				ID:                r.ID,
				Name:              r.Name,
				CurrentValue:      g.value,
				AllocationPercent: formulas.Percent(g.value, total),
				HoldingCount:      g.count,
			},
			Countries: nested,
		})
	}
	sortByValue(out, func(b domain.RegionBucket) decimal.Decimal { return b.CurrentValue })

	return Geography{Countries: flat, Regions: out}
}
