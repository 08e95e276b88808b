// Package refdata holds the static ticker reference tables used as the
// last-resort tier of field resolution. The tables are market-scoped,
// keyed by bare ticker codes (no market suffix), loaded once, and
// read-only, so they need no synchronization.
package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// Sector looks up the static sector classification for a bare ticker in
// the given market.
func Sector(market models.Market, ticker string) (string, bool) {
	var table map[string]string
	switch market {
	case models.MarketDomestic:
		table = domesticSectors
	case models.MarketForeign:
		table = foreignSectors
	default:
		return "", false
	}
	s, ok := table[ticker]
	return s, ok
}

// DividendYield looks up the static dividend yield (as a percentage) for
// a bare ticker in the given market.
func DividendYield(market models.Market, ticker string) (decimal.Decimal, bool) {
	var table map[string]float64
	switch market {
	case models.MarketDomestic:
		table = domesticDividendYields
	case models.MarketForeign:
		table = foreignDividendYields
	default:
		return decimal.Zero, false
	}
	v, ok := table[ticker]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}
