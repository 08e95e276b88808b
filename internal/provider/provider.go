// Package provider defines the contract every external market-data source
// implements, the raw-payload shape handed to the field resolver, and the
// taxonomy of fetch failures.
package provider

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// Adapter normalizes one external data source into the canonical
// QuoteRecord shape.
//
// Implementations issue a single HTTP request with a fixed timeout and do
// not retry internally; retry-by-falling-through is the chain resolver's
// job. An adapter that requires a credential it does not have must return
// ErrNotConfigured without touching the network.
type Adapter interface {
	// Name identifies the provider in logs, config, and QuoteRecord.Source.
	Name() string

	// Available reports whether this adapter can serve the given market
	// with its current configuration. It is a pure function of the
	// adapter's construction-time config, so the chain built from it is
	// deterministic for a given (market, credential set).
	Available(market models.Market) bool

	// Fetch retrieves and normalizes a quote. The returned Result carries
	// the raw provider payload alongside the record so the field resolver
	// can mine it for sector and dividend data the normalization skipped.
	Fetch(ctx context.Context, ticker string, market models.Market) (*Result, error)
}

// Result bundles a normalized record with the provider-specific leftovers
// the field resolver feeds on.
type Result struct {
	Record models.QuoteRecord

	// Payload is the raw JSON object the quote was extracted from.
	// Adapters expose it untouched; they never resolve sector or
	// dividend fields themselves.
	Payload Payload

	// DividendHistory holds recent per-share dividend amounts when the
	// provider returned any, most recent last. Empty for providers
	// without dividend endpoints.
	DividendHistory []decimal.Decimal
}

// Payload is a provider response object with loosely typed fields.
type Payload map[string]any

// String returns the named field as a string, or "" when absent or not
// string-shaped.
func (p Payload) String(key string) string {
	if p == nil {
		return ""
	}
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// Number returns the named field as a decimal. Providers are inconsistent
// about numeric encoding, so JSON numbers, numeric strings, and strings
// with a trailing '%' are all accepted.
func (p Payload) Number(key string) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}
	v, ok := p[key]
	if !ok {
		return decimal.Zero, false
	}
	return ToDecimal(v)
}

// ToDecimal coerces a loosely typed JSON value into a decimal.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		d, err := ParsePercentString(n)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
