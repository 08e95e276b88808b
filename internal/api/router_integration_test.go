//go:build integration
// +build integration

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/brapi"
	"github.com/guttosm/quotepulse/internal/provider/ratelimit"
	"github.com/guttosm/quotepulse/internal/provider/twelvedata"
	"github.com/guttosm/quotepulse/internal/quote"
	"github.com/guttosm/quotepulse/internal/resolver"
)

// buildStack wires the real engine (adapters, pacer, chain, cache, façade,
// handler, router) against fake provider endpoints.
func buildStack(t *testing.T, twelveURL, brapiURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := httpx.New(5 * time.Second)
	adapters := []provider.Adapter{
		twelvedata.New(client, twelveURL, "test-key"),
		brapi.New(client, brapiURL, ""),
	}
	chain := resolver.NewChain(ratelimit.NewPacer(nil), adapters...)
	svc := quote.NewService(quote.NewCache(time.Minute), chain)
	return api.NewRouter(api.NewHandler(svc))
}

func TestAPI_E2E_QuoteWithFallback(t *testing.T) {
	// First provider in the chain always fails
	twelve := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer twelve.Close()

	// Second provider produces the quote
	brapiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"symbol": "PETR4",
			"regularMarketPrice": 38.5,
			"regularMarketChange": 0.4,
			"regularMarketChangePercent": 1.05,
			"regularMarketPreviousClose": 38.1,
			"regularMarketVolume": 15230400
		}]}`))
	}))
	defer brapiSrv.Close()

	router := buildStack(t, twelve.URL, brapiSrv.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote?ticker=PETR4&market=domestic", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Ticker       string `json:"ticker"`
		CurrentPrice string `json:"current_price"`
		Source       string `json:"source"`
		Sector       string `json:"sector"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Ticker != "PETR4" || body.CurrentPrice != "38.5" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Source != "brapi" {
		t.Fatalf("expected fallback to brapi, got %q", body.Source)
	}
	if body.Sector != "Energy" {
		t.Fatalf("expected static sector table lookup, got %q", body.Sector)
	}
}

func TestAPI_E2E_AllProvidersDown(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	router := buildStack(t, down.URL, down.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote?ticker=PETR4&market=domestic", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when every provider fails, got %d", w.Code)
	}
}
