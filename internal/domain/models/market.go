package models

import (
	"fmt"
	"strings"
)

// Market identifies which exchange profile a ticker belongs to.
//
// The engine supports two profiles:
//   - MarketDomestic: B3-listed instruments (suffix ".SA" on providers
//     that use Yahoo-style symbols, prices in BRL).
//   - MarketForeign: US-listed instruments (no suffix, prices in USD).
type Market string

const (
	MarketDomestic Market = "domestic"
	MarketForeign  Market = "foreign"
)

// Profile describes the symbol and currency conventions of a market.
type Profile struct {
	Suffix    string   // ticker suffix used by suffix-style providers (e.g., ".SA")
	Currency  string   // ISO currency code of quoted prices
	Exchanges []string // exchanges covered by this profile
}

var profiles = map[Market]Profile{
	MarketDomestic: {Suffix: ".SA", Currency: "BRL", Exchanges: []string{"B3"}},
	MarketForeign:  {Suffix: "", Currency: "USD", Exchanges: []string{"NYSE", "NASDAQ"}},
}

// ParseMarket converts a user-supplied market name into a Market.
// It accepts the canonical names plus the legacy spellings used by the
// dashboard ("brazilian", "b3", "us", "nyse", "nasdaq").
func ParseMarket(s string) (Market, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "domestic", "brazilian", "br", "b3":
		return MarketDomestic, nil
	case "foreign", "us", "nyse", "nasdaq":
		return MarketForeign, nil
	default:
		return "", fmt.Errorf("unknown market %q", s)
	}
}

// Profile returns the symbol/currency conventions for the market.
func (m Market) Profile() Profile {
	return profiles[m]
}

// Symbol applies the market's suffix convention to a ticker, for providers
// that expect suffixed symbols (e.g., "PETR4" -> "PETR4.SA").
func (m Market) Symbol(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	suffix := profiles[m].Suffix
	if suffix != "" && !strings.HasSuffix(t, suffix) {
		return t + suffix
	}
	return t
}

// Clean strips the market suffix from a ticker, producing the bare code
// used as the key into the static reference tables ("PETR4.SA" -> "PETR4").
func (m Market) Clean(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if suffix := profiles[m].Suffix; suffix != "" {
		t = strings.TrimSuffix(t, suffix)
	}
	return t
}
