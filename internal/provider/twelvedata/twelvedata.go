// Package twelvedata adapts the Twelve Data /quote endpoint. An API key
// is required; without one the adapter reports itself unavailable and the
// chain skips it silently.
package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
)

// Name is the provider identifier used in config, logs, and Source fields.
const Name = "twelvedata"

// DefaultEndpoint is the production quote endpoint.
const DefaultEndpoint = "https://api.twelvedata.com/quote"

// Adapter fetches quotes from Twelve Data for both markets.
type Adapter struct {
	client   *httpx.Client
	endpoint string
	apiKey   string
}

// New builds the adapter. An empty endpoint selects DefaultEndpoint.
func New(client *httpx.Client, endpoint, apiKey string) *Adapter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Adapter{client: client, endpoint: endpoint, apiKey: apiKey}
}

func (a *Adapter) Name() string { return Name }

// Available is true for every market once an API key is configured.
func (a *Adapter) Available(models.Market) bool {
	return a.apiKey != ""
}

// Fetch retrieves a quote for the market-suffixed symbol. Twelve Data
// encodes every numeric field as a string; Payload.Number handles that.
func (a *Adapter) Fetch(ctx context.Context, ticker string, market models.Market) (*provider.Result, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", Name, provider.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("symbol", market.Symbol(ticker))
	q.Set("apikey", a.apiKey)

	resp, err := a.client.Get(ctx, a.endpoint+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", Name, provider.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", Name, resp.StatusCode, provider.ErrUnavailable)
	}

	var payload provider.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", Name, provider.ErrMalformed)
	}

	// Errors come back as 200 with {"status":"error","code":...,"message":...}.
	if payload.String("status") == "error" {
		return nil, fmt.Errorf("%s: %s: %w", Name, payload.String("message"), provider.ErrUnavailable)
	}

	price, ok := payload.Number("price")
	if !ok {
		return nil, fmt.Errorf("%s: missing price: %w", Name, provider.ErrMalformed)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%s: price %s: %w", Name, price, provider.ErrNonPositivePrice)
	}

	change, _ := payload.Number("change")
	changePct, _ := payload.Number("percent_change")
	prevClose, ok := payload.Number("previous_close")
	if !ok {
		prevClose = price.Sub(change)
	}
	marketCap, _ := payload.Number("market_cap")

	var volume int64
	if v, ok := payload.Number("volume"); ok {
		volume = v.IntPart()
	}

	return &provider.Result{
		Record: models.QuoteRecord{
			Ticker:        market.Clean(ticker),
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
		Payload: payload,
	}, nil
}
