package formulas

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats/scalar"
)

// MoneyPlaces is the number of decimal places money is displayed with.
const MoneyPlaces = 2

// RoundMoney rounds a monetary amount for display.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// DisplayFloat rounds d to the given number of places and converts it for
// JSON/msgpack consumers that expect plain numbers.
func DisplayFloat(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

// Round rounds a float64 to n decimal places.
func Round(val float64, decimals int) float64 {
	return scalar.Round(val, decimals)
}
