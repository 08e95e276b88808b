// Package brapi adapts the brapi.dev quote API, which covers B3-listed
// instruments only. A token is optional; without one brapi serves a
// reduced free tier, so the adapter stays enabled either way.
package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
)

// Name is the provider identifier used in config, logs, and Source fields.
const Name = "brapi"

// DefaultEndpoint is the production quote endpoint. Tests point the
// adapter at an httptest server instead.
const DefaultEndpoint = "https://brapi.dev/api/quote"

// Adapter fetches quotes for domestic tickers from brapi.dev.
type Adapter struct {
	client   *httpx.Client
	endpoint string
	token    string
}

// New builds the adapter. An empty endpoint selects DefaultEndpoint.
func New(client *httpx.Client, endpoint, token string) *Adapter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Adapter{client: client, endpoint: endpoint, token: token}
}

func (a *Adapter) Name() string { return Name }

// Available reports true only for the domestic market; brapi has no
// coverage of foreign listings. No credential is required.
func (a *Adapter) Available(market models.Market) bool {
	return market == models.MarketDomestic
}

type response struct {
	Results []provider.Payload `json:"results"`
}

// Fetch retrieves results[0] for the suffix-stripped ticker and
// normalizes the regularMarket* fields.
func (a *Adapter) Fetch(ctx context.Context, ticker string, market models.Market) (*provider.Result, error) {
	if !a.Available(market) {
		return nil, fmt.Errorf("%s: market %s: %w", Name, market, provider.ErrNotConfigured)
	}

	// brapi takes the bare B3 code, never the ".SA" suffixed symbol.
	symbol := market.Clean(ticker)

	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")
	if a.token != "" {
		q.Set("token", a.token)
	}

	resp, err := a.client.Get(ctx, fmt.Sprintf("%s/%s?%s", a.endpoint, url.PathEscape(symbol), q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", Name, provider.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", Name, resp.StatusCode, provider.ErrUnavailable)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", Name, provider.ErrMalformed)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("%s: empty results: %w", Name, provider.ErrMalformed)
	}
	payload := body.Results[0]

	price, ok := payload.Number("regularMarketPrice")
	if !ok {
		return nil, fmt.Errorf("%s: missing price: %w", Name, provider.ErrMalformed)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%s: price %s: %w", Name, price, provider.ErrNonPositivePrice)
	}

	change, _ := payload.Number("regularMarketChange")
	changePct, _ := payload.Number("regularMarketChangePercent")
	prevClose, ok := payload.Number("regularMarketPreviousClose")
	if !ok {
		prevClose = price.Sub(change)
	}
	marketCap, _ := payload.Number("marketCap")

	var volume int64
	if v, ok := payload.Number("regularMarketVolume"); ok {
		volume = v.IntPart()
	}

	return &provider.Result{
		Record: models.QuoteRecord{
			Ticker:        symbol,
			Market:        market,
			CurrentPrice:  price,
			PreviousClose: prevClose,
			Change:        change,
			ChangePercent: changePct,
			Volume:        volume,
			MarketCap:     marketCap,
			Source:        Name,
			FetchedAt:     time.Now().UTC(),
		},
		Payload:         payload,
		DividendHistory: dividendHistory(payload),
	}, nil
}

// dividendHistory pulls per-share cash dividend amounts out of brapi's
// dividendsData block, oldest first.
func dividendHistory(payload provider.Payload) []decimal.Decimal {
	data, ok := payload["dividendsData"].(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := data["cashDividends"].([]any)
	if !ok {
		return nil
	}

	out := make([]decimal.Decimal, 0, len(entries))
	// brapi lists newest first; reverse so history reads oldest -> newest.
	for i := len(entries) - 1; i >= 0; i-- {
		entry, ok := entries[i].(map[string]any)
		if !ok {
			continue
		}
		if rate, ok := provider.ToDecimal(entry["rate"]); ok && rate.IsPositive() {
			out = append(out, rate)
		}
	}
	return out
}
