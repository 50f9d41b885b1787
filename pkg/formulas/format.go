package formulas

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount in the conventions of the ISO currency code,
// e.g. "$1,234.50" or "1.234,50 €". Unknown codes fall back to
// "1234.50 XYZ".
func FormatCurrency(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(MoneyPlaces), code)
	}

	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPercent renders a percentage value (already scaled by 100) with two
// decimals.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// IsCurrencyCode reports whether code is a currency known to go-money.
func IsCurrencyCode(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}
