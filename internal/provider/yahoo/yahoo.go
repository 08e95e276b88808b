// Package yahoo adapts the Yahoo Finance v8 chart API, the only provider
// in the chain that needs no credential. The chart meta block carries the
// regular-market quote; dividend events are requested alongside so the
// field resolver can compute a trailing yield.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
)

// Name is the provider identifier used in config, logs, and Source fields.
const Name = "yahoo"

// DefaultEndpoint is the production chart endpoint base.
const DefaultEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart"

// Adapter fetches quotes from the Yahoo chart API for both markets.
type Adapter struct {
	client   *httpx.Client
	endpoint string
}

// New builds the adapter. An empty endpoint selects DefaultEndpoint.
func New(client *httpx.Client, endpoint string) *Adapter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Adapter{client: client, endpoint: endpoint}
}

func (a *Adapter) Name() string { return Name }

// Available is always true: Yahoo needs no credential and covers both
// market profiles through the suffix convention.
func (a *Adapter) Available(models.Market) bool { return true }

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  any           `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta   provider.Payload `json:"meta"`
	Events struct {
		Dividends map[string]struct {
			Amount float64 `json:"amount"`
			Date   int64   `json:"date"`
		} `json:"dividends"`
	} `json:"events"`
}

// Fetch retrieves the 1d chart for the market-suffixed symbol and
// normalizes its meta block. Market cap is not exposed on this endpoint,
// so the record carries zero there.
func (a *Adapter) Fetch(ctx context.Context, ticker string, market models.Market) (*provider.Result, error) {
	q := url.Values{}
	q.Set("range", "1d")
	q.Set("interval", "1d")
	q.Set("events", "div")

	symbol := market.Symbol(ticker)
	resp, err := a.client.Get(ctx, fmt.Sprintf("%s/%s?%s", a.endpoint, url.PathEscape(symbol), q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", Name, provider.ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d: %w", Name, resp.StatusCode, provider.ErrUnavailable)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", Name, provider.ErrMalformed)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: empty result: %w", Name, provider.ErrMalformed)
	}
	result := body.Chart.Result[0]
	meta := result.Meta

	price, ok := meta.Number("regularMarketPrice")
	if !ok {
		return nil, fmt.Errorf("%s: missing price: %w", Name, provider.ErrMalformed)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%s: price %s: %w", Name, price, provider.ErrNonPositivePrice)
	}

	prevClose, ok := meta.Number("chartPreviousClose")
	if !ok {
		prevClose, _ = meta.Number("previousClose")
	}
	change := decimal.Zero
	changePct := decimal.Zero
	if prevClose.IsPositive() {
		change = price.Sub(prevClose)
		changePct = change.Div(prevClose).Mul(decimal.NewFromInt(100))
	}

	var volume int64
	if v, ok := meta.Number("regularMarketVolume"); ok {
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
		Payload:         meta,
		DividendHistory: dividendHistory(result),
	}, nil
}

// dividendHistory flattens the chart's dividend events, oldest first.
func dividendHistory(result chartResult) []decimal.Decimal {
	if len(result.Events.Dividends) == 0 {
		return nil
	}
	type div struct {
		date   int64
		amount float64
	}
	divs := make([]div, 0, len(result.Events.Dividends))
	for _, d := range result.Events.Dividends {
		if d.Amount > 0 {
			divs = append(divs, div{date: d.Date, amount: d.Amount})
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i].date < divs[j].date })

	out := make([]decimal.Decimal, 0, len(divs))
	for _, d := range divs {
		out = append(out, decimal.NewFromFloat(d.amount))
	}
	return out
}
