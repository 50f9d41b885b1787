// Package allocation turns the flat list of enriched holdings into allocation
// buckets along every classification axis.
//
// Each pass is a pure function of the holdings, one dimension table and the
// portfolio total, so the passes are independent of each other. Every bucket
// list is sorted by current value descending with ties kept in dimension table
// order, and buckets without value are omitted.
package allocation

import (
	"sort"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/pkg/formulas"
	"github.com/shopspring/decimal"
)

// group accumulates the members of one bucket
type group struct {
	value decimal.Decimal
	count int
}

// row is the identity of one dimension table entry
type row struct {
	id   int64
	name string
	code string
}

// sumBy groups holdings by key and sums their market values. Holdings whose
// key is zero (unresolved) are skipped; only holdings with a positive quantity
// are counted.
func sumBy(holdings []domain.EnrichedHolding, key func(domain.EnrichedHolding) int64) map[int64]*group {
	groups := make(map[int64]*group)
	for _, h := range holdings {
		k := key(h)
		if k == 0 {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &group{value: decimal.Zero}
			groups[k] = g
		}
		g.value = g.value.Add(h.MarketValue)
		if h.IsHeld() {
			g.count++
		}
	}
	return groups
}

// buildBuckets walks the dimension rows in table order and emits one bucket
// per row with a positive value, then sorts them by value.
func buildBuckets(rows []row, groups map[int64]*group, total decimal.Decimal) []domain.AllocationBucket {
	buckets := make([]domain.AllocationBucket, 0, len(groups))
	for _, r := range rows {
		g, ok := groups[r.id]
		if !ok || !g.value.IsPositive() {
			continue
		}
		buckets = append(buckets, domain.AllocationBucket{
			ID:                r.id,
			Name:              r.name,
			Code:              r.code,
			CurrentValue:      g.value,
			AllocationPercent: formulas.Percent(g.value, total),
			HoldingCount:      g.count,
		})
	}
	sortByValue(buckets, func(b domain.AllocationBucket) decimal.Decimal { return b.CurrentValue })
	return buckets
}

// sortByValue orders buckets by value descending. The sort is stable so equal
// values keep their dimension table order.
func sortByValue[T any](buckets []T, value func(T) decimal.Decimal) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return value(buckets[i]).GreaterThan(value(buckets[j]))
	})
}

// Total sums the market value of every holding
func Total(holdings []domain.EnrichedHolding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.MarketValue)
	}
	return total
}
