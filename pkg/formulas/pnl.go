package formulas

import "github.com/shopspring/decimal"

// ProfitLoss is the split of a position's gain into an absolute amount and a
// ratio relative to what was paid.
type ProfitLoss struct {
	Absolute decimal.Decimal
	Ratio    decimal.Decimal // Absolute / cost basis, 0 when nothing was paid
}

// SplitProfitLoss computes the profit or loss of a position worth marketValue
// that cost costBasis.
func SplitProfitLoss(marketValue, costBasis decimal.Decimal) ProfitLoss {
	abs := marketValue.Sub(costBasis)
	return ProfitLoss{
		Absolute: abs,
		Ratio:    Weight(abs, costBasis),
	}
}

// Value multiplies a quantity by a unit price.
func Value(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}
