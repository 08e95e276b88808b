package dto

import (
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// QuoteResponse represents the JSON structure returned by the
// GET /api/v1/quote endpoint.
//
// Decimal fields are serialized as strings so clients never lose
// precision to float64 round-tripping. The shape matches the API
// contract and may differ from internal domain models.
type QuoteResponse struct {
	Ticker               string    `json:"ticker" example:"PETR4"`
	Market               string    `json:"market" example:"domestic"`
	Currency             string    `json:"currency" example:"BRL"`
	CurrentPrice         string    `json:"current_price" example:"38.50"`
	PreviousClose        string    `json:"previous_close" example:"38.10"`
	Change               string    `json:"change" example:"0.40"`
	ChangePercent        string    `json:"change_percent" example:"1.05"`
	Volume               int64     `json:"volume" example:"15230400"`
	MarketCap            string    `json:"market_cap" example:"498000000000"`
	Sector               string    `json:"sector" example:"Energy"`
	DividendYieldPercent string    `json:"dividend_yield_percent" example:"6.05"`
	Source               string    `json:"source" example:"brapi"`
	FetchedAt            time.Time `json:"fetched_at"`
}

// NewQuoteResponse maps a domain record to its API representation.
func NewQuoteResponse(rec *models.QuoteRecord) QuoteResponse {
	return QuoteResponse{
		Ticker:               rec.Ticker,
		Market:               string(rec.Market),
		Currency:             rec.Market.Profile().Currency,
		CurrentPrice:         rec.CurrentPrice.String(),
		PreviousClose:        rec.PreviousClose.String(),
		Change:               rec.Change.String(),
		ChangePercent:        rec.ChangePercent.String(),
		Volume:               rec.Volume,
		MarketCap:            rec.MarketCap.String(),
		Sector:               rec.Sector,
		DividendYieldPercent: rec.DividendYieldPercent.String(),
		Source:               rec.Source,
		FetchedAt:            rec.FetchedAt,
	}
}
