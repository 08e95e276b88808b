// Package resolver contains the two resolution engines behind a quote
// lookup: the provider chain, which hunts for a usable price, and the
// field resolver, which fills in sector and dividend yield through tiered
// fallbacks because providers routinely omit both.
package resolver

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/refdata"
)

// dividendAliases lists the field names providers use for the same
// dividend-yield concept, in scan order. Providers disagree wildly here;
// the list is a superset accumulated from observed payloads.
var dividendAliases = []string{
	"dividendYield",
	"trailingAnnualDividendYield",
	"forwardDividendYield",
	"dividendRate",
	"yield",
	"dividend_yield",
	"yieldPercent",
	"dividend_yield_percent",
	"dividend_yield_percentage",
	"yield_percent",
	"yield_percentage",
	"dividend_yield_annual",
	"annual_dividend_yield",
	"dividend_yield_rate",
	"yield_rate",
	"dividend_percent",
	"dividend_percentage",
	"dividend_yield_pct",
	"yield_pct",
	"dividend_yield_ratio",
	"yield_ratio",
}

var hundred = decimal.NewFromInt(100)

// ResolveFields fills the record's Sector and DividendYieldPercent from
// the raw provider payload, falling back through the static reference
// tables. It runs identically regardless of which provider supplied the
// price, so sector/yield quality is decoupled from price-source quality.
func ResolveFields(res *provider.Result) {
	rec := &res.Record
	rec.Sector = resolveSector(rec.Market, rec.Ticker, res.Payload)
	rec.DividendYieldPercent = resolveDividendYield(rec.Market, rec.Ticker, res)
}

// resolveSector tries, in order: the payload's own sector field, the
// market's structural heuristic, the static sector table, "Unknown".
func resolveSector(market models.Market, ticker string, payload provider.Payload) string {
	if s := strings.TrimSpace(payload.String("sector")); s != "" && s != models.SectorUnknown {
		return s
	}

	code := market.Clean(ticker)

	// B3 lists real-estate funds (FIIs) under four letters plus "11".
	// Equity units share the suffix, so the heuristic defers to the
	// static table for tickers it already classifies (e.g., SANB11).
	if market == models.MarketDomestic && strings.HasSuffix(code, "11") {
		if s, ok := refdata.Sector(market, code); ok {
			return s
		}
		return "Real Estate"
	}

	if s, ok := refdata.Sector(market, code); ok {
		return s
	}
	return models.SectorUnknown
}

// resolveDividendYield tries, in order: the payload alias scan, a
// trailing yield computed from dividend history, the static yield table,
// zero. The result is always a percentage.
func resolveDividendYield(market models.Market, ticker string, res *provider.Result) decimal.Decimal {
	for _, alias := range dividendAliases {
		v, ok := res.Payload.Number(alias)
		if !ok || !v.IsPositive() {
			continue
		}
		return normalizeYield(v)
	}

	if y, ok := historyYield(res.DividendHistory, res.Record.CurrentPrice); ok {
		return y
	}

	if y, ok := refdata.DividendYield(market, market.Clean(ticker)); ok {
		return y
	}
	return decimal.Zero
}

// normalizeYield maps a fraction to a percentage: providers encode 6.05%
// as either 0.0605 or 6.05. Values below 1 are treated as fractions;
// anything else is already a percentage, so the mapping is idempotent
// above 1 (6.05 -> 6.05).
func normalizeYield(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.NewFromInt(1)) {
		return v.Mul(hundred)
	}
	return v
}

// historyYield sums the last four dividend payments and divides by the
// current price. Requires at least four entries, mirroring a full year of
// quarterly payouts.
func historyYield(history []decimal.Decimal, price decimal.Decimal) (decimal.Decimal, bool) {
	if len(history) < 4 || !price.IsPositive() {
		return decimal.Zero, false
	}
	annual := decimal.Zero
	for _, d := range history[len(history)-4:] {
		annual = annual.Add(d)
	}
	if !annual.IsPositive() {
		return decimal.Zero, false
	}
	return annual.Div(price).Mul(hundred), true
}
