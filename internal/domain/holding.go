package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one personally-held position. It is the source of truth for what
// is owned and is never derived.
type Holding struct {
	ID            string          `json:"id,omitempty"`
	Ticker        string          `json:"ticker"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// EnrichedHolding is a Holding joined with its EnrichedInstrument and valued.
//
// All amounts are unrounded. Weight is MarketValue / total portfolio value and
// is assigned by the orchestrator once the total is known.
type EnrichedHolding struct {
	EnrichedInstrument

	Quantity           decimal.Decimal `json:"quantity"`
	PurchaseDate       time.Time       `json:"purchase_date"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	MarketValue        decimal.Decimal `json:"market_value"`
	CostBasis          decimal.Decimal `json:"cost_basis"`
	ProfitLossAbsolute decimal.Decimal `json:"profit_loss_absolute"`
	ProfitLossPercent  decimal.Decimal `json:"profit_loss_percent"`
	Weight             decimal.Decimal `json:"weight"`
}

// IsHeld reports whether the position has a positive quantity
func (h EnrichedHolding) IsHeld() bool {
	return h.Quantity.IsPositive()
}
