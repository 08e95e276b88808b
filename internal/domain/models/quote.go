package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectorUnknown is the sector assigned when no tier of the field
// resolver can classify an instrument.
const SectorUnknown = "Unknown"

// QuoteRecord is the canonical result of a successful quote resolution.
//
// A record is only ever built from a provider response whose price is
// strictly positive; a zero or negative price is treated as a failed
// fetch and never reaches callers.
//
// swagger:model QuoteRecord
type QuoteRecord struct {
	Ticker        string          `json:"ticker" example:"PETR4"`
	Market        Market          `json:"market" example:"domestic"`
	CurrentPrice  decimal.Decimal `json:"current_price" example:"38.50"`
	PreviousClose decimal.Decimal `json:"previous_close" example:"38.10"`
	Change        decimal.Decimal `json:"change" example:"0.40"`
	ChangePercent decimal.Decimal `json:"change_percent" example:"1.05"`
	Volume        int64           `json:"volume" example:"15230400"`
	MarketCap     decimal.Decimal `json:"market_cap" example:"498000000000"`

	// Sector is one of the known taxonomy names or "Unknown".
	Sector string `json:"sector" example:"Energy"`

	// DividendYieldPercent is always expressed as a percentage
	// (6.05 means 6.05%), never as a fraction. Zero when unavailable.
	DividendYieldPercent decimal.Decimal `json:"dividend_yield_percent" example:"6.05"`

	// Source names the provider that produced the price fields.
	Source    string    `json:"source" example:"brapi"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Valid reports whether the record satisfies the engine invariant that a
// successful quote carries a strictly positive price.
func (q *QuoteRecord) Valid() bool {
	return q != nil && q.CurrentPrice.IsPositive()
}

// AnnualDividendIncome projects the yearly dividend income of a position
// of the given size at the current price and yield.
func (q *QuoteRecord) AnnualDividendIncome(quantity int64) decimal.Decimal {
	if q == nil || quantity <= 0 || !q.CurrentPrice.IsPositive() {
		return decimal.Zero
	}
	return q.DividendYieldPercent.
		Div(decimal.NewFromInt(100)).
		Mul(q.CurrentPrice).
		Mul(decimal.NewFromInt(quantity))
}
