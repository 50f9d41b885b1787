// Package formulas holds the small arithmetic primitives shared by the
// enrichment, allocation and presentation layers.
//
// All monetary arithmetic is done on shopspring decimals so that sums across
// dimensions never accumulate binary rounding error. Rounding to two decimal
// places happens only at the display boundary.
package formulas

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Weight returns value/total as a fraction. A zero total yields zero.
func Weight(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total)
}

// Percent returns value/total*100. A zero total yields zero.
func Percent(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Mul(hundred).Div(total)
}
