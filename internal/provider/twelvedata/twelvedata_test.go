package twelvedata

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
	withKey := New(httpx.New(time.Second), "", "key")
	if !withKey.Available(models.MarketDomestic) || !withKey.Available(models.MarketForeign) {
		t.Fatalf("keyed adapter should serve both markets")
	}
	keyless := New(httpx.New(time.Second), "", "")
	if keyless.Available(models.MarketDomestic) || keyless.Available(models.MarketForeign) {
		t.Fatalf("keyless adapter should be unavailable")
	}
}

func TestFetch_StringNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "PETR4.SA" {
			t.Fatalf("expected suffixed symbol, got %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "key" {
			t.Fatalf("apikey not forwarded, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"symbol": "PETR4.SA",
			"price": "38.50",
			"change": "0.40",
			"percent_change": "1.05",
			"previous_close": "38.10",
			"volume": "15230400",
			"market_cap": "498000000000"
		}`))
	}))
	defer srv.Close()

	a := New(httpx.New(2*time.Second), srv.URL, "key")
	res, err := a.Fetch(context.Background(), "PETR4", models.MarketDomestic)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	rec := res.Record
	if rec.Ticker != "PETR4" || rec.Source != Name {
		t.Fatalf("unexpected identity: %+v", rec)
	}
	if rec.CurrentPrice.String() != "38.5" {
		t.Fatalf("string price not parsed: %s", rec.CurrentPrice)
	}
	if rec.Volume != 15230400 {
		t.Fatalf("string volume not parsed: %d", rec.Volume)
	}
	if rec.ChangePercent.String() != "1.05" {
		t.Fatalf("unexpected change percent: %s", rec.ChangePercent)
	}
}

func TestFetch_ErrorAsOK(t *testing.T) {
	// Twelve Data reports errors inside a 200 response
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":429,"message":"You have run out of API credits"}`))
	}))
	defer srv.Close()

	a := New(httpx.New(time.Second), srv.URL, "key")
	_, err := a.Fetch(context.Background(), "AAPL", models.MarketForeign)
	if !errors.Is(err, provider.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetch_NoKey(t *testing.T) {
	a := New(httpx.New(time.Second), "http://127.0.0.1:0", "")
	_, err := a.Fetch(context.Background(), "AAPL", models.MarketForeign)
	if !errors.Is(err, provider.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFetch_MissingPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"symbol":"AAPL"}`))
	}))
	defer srv.Close()

	a := New(httpx.New(time.Second), srv.URL, "key")
	_, err := a.Fetch(context.Background(), "AAPL", models.MarketForeign)
	if !errors.Is(err, provider.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
