// Package alphavantage adapts the Alpha Vantage GLOBAL_QUOTE function.
// An API key is required. The response uses numbered field names
// ("05. price") and a change percent with a trailing '%'.
package alphavantage

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
const Name = "alphavantage"

// DefaultEndpoint is the production query endpoint.
const DefaultEndpoint = "https://www.alphavantage.co/query"

// Adapter fetches quotes from Alpha Vantage for both markets.
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

type response struct {
	GlobalQuote provider.Payload `json:"Global Quote"`
}

// Fetch retrieves a GLOBAL_QUOTE for the market-suffixed symbol.
// Alpha Vantage does not expose market cap on this function, so the
// record carries zero there.
func (a *Adapter) Fetch(ctx context.Context, ticker string, market models.Market) (*provider.Result, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", Name, provider.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
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

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", Name, provider.ErrMalformed)
	}
	payload := body.GlobalQuote
	if len(payload) == 0 {
		// Rate-limit notes and unknown symbols both come back as 200
		// with an empty (or absent) Global Quote object.
		return nil, fmt.Errorf("%s: empty quote: %w", Name, provider.ErrMalformed)
	}

	price, ok := payload.Number("05. price")
	if !ok {
		return nil, fmt.Errorf("%s: missing price: %w", Name, provider.ErrMalformed)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%s: price %s: %w", Name, price, provider.ErrNonPositivePrice)
	}

	change, _ := payload.Number("09. change")
	changePct, _ := payload.Number("10. change percent") // "1.0214%" -> 1.0214
	prevClose, ok := payload.Number("08. previous close")
	if !ok {
		prevClose = price.Sub(change)
	}

	var volume int64
	if v, ok := payload.Number("06. volume"); ok {
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
			Source:        Name,
			FetchedAt:     time.Now().UTC(),
		},
		Payload: payload,
	}, nil
}
