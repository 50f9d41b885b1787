package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Validate checks the structural integrity of every table: identifiers must
// be positive and unique within their table, names and tickers non-empty and
// instrument tickers unique. Foreign keys are not checked here; an unresolved
// key is a data-quality gap, not a structural error.
func (r ReferenceData) Validate() error {
	var errs []error

	errs = append(errs, checkRows("markets", len(r.Markets), func(i int) (int64, string) {
		return r.Markets[i].ID, r.Markets[i].Name
	})...)
	errs = append(errs, checkRows("asset_classes", len(r.AssetClasses), func(i int) (int64, string) {
		return r.AssetClasses[i].ID, r.AssetClasses[i].Name
	})...)
	errs = append(errs, checkRows("sectors", len(r.Sectors), func(i int) (int64, string) {
		return r.Sectors[i].ID, r.Sectors[i].Name
	})...)
	errs = append(errs, checkRows("industries", len(r.Industries), func(i int) (int64, string) {
		return r.Industries[i].ID, r.Industries[i].Name
	})...)
	errs = append(errs, checkRows("currencies", len(r.Currencies), func(i int) (int64, string) {
		return r.Currencies[i].ID, r.Currencies[i].Code
	})...)
	errs = append(errs, checkRows("regions", len(r.Regions), func(i int) (int64, string) {
		return r.Regions[i].ID, r.Regions[i].Name
	})...)
	errs = append(errs, checkRows("countries", len(r.Countries), func(i int) (int64, string) {
		return r.Countries[i].ID, r.Countries[i].Name
	})...)

	tickers := make(map[string]int, len(r.Instruments))
	for i, inst := range r.Instruments {
		ticker := strings.TrimSpace(inst.Ticker)
		if ticker == "" {
			errs = append(errs, &ValidationError{Table: "instruments", Row: i, Field: "ticker", Reason: "empty"})
			continue
		}
		if prev, dup := tickers[ticker]; dup {
			errs = append(errs, &ValidationError{
				Table:  "instruments",
				Row:    i,
				Field:  "ticker",
				Reason: "duplicate of row " + strconv.Itoa(prev),
			})
			continue
		}
		tickers[ticker] = i
	}

	return errors.Join(errs...)
}

// ValidateHoldings rejects holdings without a ticker or with negative
// quantities or purchase prices.
func ValidateHoldings(holdings []Holding) error {
	var errs []error
	for i, h := range holdings {
		if strings.TrimSpace(h.Ticker) == "" {
			errs = append(errs, &ValidationError{Table: "holdings", Row: i, Field: "ticker", Reason: "empty"})
		}
		if h.Quantity.IsNegative() {
			errs = append(errs, &ValidationError{Table: "holdings", Row: i, Field: "quantity", Reason: "negative"})
		}
		if h.PurchasePrice.IsNegative() {
			errs = append(errs, &ValidationError{Table: "holdings", Row: i, Field: "purchase_price", Reason: "negative"})
		}
	}
	return errors.Join(errs...)
}

func checkRows(table string, n int, row func(int) (int64, string)) []error {
	var errs []error
	seen := make(map[int64]int, n)
	for i := 0; i < n; i++ {
		id, name := row(i)
		if id <= 0 {
			errs = append(errs, &ValidationError{Table: table, Row: i, Field: "id", Reason: "must be positive"})
			continue
		}
		if prev, dup := seen[id]; dup {
			errs = append(errs, &ValidationError{Table: table, Row: i, Field: "id", Reason: "duplicate of row " + strconv.Itoa(prev)})
			continue
		}
		seen[id] = i
		if strings.TrimSpace(name) == "" {
			errs = append(errs, &ValidationError{Table: table, Row: i, Field: "name", Reason: "empty"})
		}
	}
	return errs
}
