package alphavantage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
)

func TestAvailable_NeedsKey(t *testing.T) {
	if New(httpx.New(time.Second), "", "").Available(models.MarketForeign) {
		t.Fatalf("keyless adapter should be unavailable")
	}
	if !New(httpx.New(time.Second), "", "key").Available(models.MarketForeign) {
		t.Fatalf("keyed adapter should be available")
	}
}

func TestFetch_GlobalQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("function"); got != "GLOBAL_QUOTE" {
			t.Fatalf("unexpected function %q", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "AAPL" {
			t.Fatalf("expected bare foreign symbol, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Global Quote": {
			"01. symbol": "AAPL",
			"05. price": "189.4300",
			"06. volume": "52164536",
			"08. previous close": "187.5200",
			"09. change": "1.9100",
			"10. change percent": "1.0186%"
		}}`))
	}))
	defer srv.Close()

	a := New(httpx.New(2*time.Second), srv.URL, "key")
	res, err := a.Fetch(context.Background(), "AAPL", models.MarketForeign)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	rec := res.Record
	if rec.Ticker != "AAPL" || rec.Source != Name {
		t.Fatalf("unexpected identity: %+v", rec)
	}
	if rec.CurrentPrice.String() != "189.43" {
		t.Fatalf("price not parsed: %s", rec.CurrentPrice)
	}
	// trailing '%' must be tolerated
	if rec.ChangePercent.String() != "1.0186" {
		t.Fatalf("change percent not parsed: %s", rec.ChangePercent)
	}
	if rec.PreviousClose.String() != "187.52" || rec.Volume != 52164536 {
		t.Fatalf("unexpected fields: %+v", rec)
	}
	if !rec.MarketCap.IsZero() {
		t.Fatalf("market cap should be zero on this endpoint, got %s", rec.MarketCap)
	}
}

func TestFetch_EmptyQuote(t *testing.T) {
	// Unknown symbols and rate-limit notes both come back as 200 with no
	// Global Quote content
	cases := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{"Global Quote": {}}`},
		{name: "rate limit note", body: `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			a := New(httpx.New(time.Second), srv.URL, "key")
			_, err := a.Fetch(context.Background(), "ZZZZ", models.MarketForeign)
			if !errors.Is(err, provider.ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestFetch_NoKey(t *testing.T) {
	a := New(httpx.New(time.Second), "http://127.0.0.1:0", "")
	_, err := a.Fetch(context.Background(), "AAPL", models.MarketForeign)
	if !errors.Is(err, provider.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
