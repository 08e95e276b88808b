package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/domain/models"
)

type mockQuoteService struct {
	rec         *models.QuoteRecord
	cleared     bool
	lastTicker  string
	lastMarket  models.Market
	lastRefresh bool
}

func (m *mockQuoteService) GetQuote(_ context.Context, ticker string, market models.Market, forceRefresh bool) *models.QuoteRecord {
	m.lastTicker = ticker
	m.lastMarket = market
	m.lastRefresh = forceRefresh
	return m.rec
}

func (m *mockQuoteService) ClearCache() { m.cleared = true }

func (m *mockQuoteService) ProviderOrder(market models.Market) []string {
	if market == models.MarketDomestic {
		return []string{"brapi", "yahoo"}
	}
	return []string{"yahoo"}
}

var _ QuoteService = (*mockQuoteService)(nil)

func setupRouterWithMock(s QuoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/quote", h.GetQuote)
	v1.GET("/providers", h.GetProviders)
	v1.POST("/cache/clear", h.ClearCache)
	return r
}

func sampleRecord() *models.QuoteRecord {
	return &models.QuoteRecord{
		Ticker:               "PETR4",
		Market:               models.MarketDomestic,
		CurrentPrice:         decimal.RequireFromString("38.50"),
		PreviousClose:        decimal.RequireFromString("38.10"),
		Change:               decimal.RequireFromString("0.40"),
		ChangePercent:        decimal.RequireFromString("1.05"),
		Volume:               15230400,
		Sector:               "Energy",
		DividendYieldPercent: decimal.RequireFromString("6.05"),
		Source:               "brapi",
		FetchedAt:            time.Now().UTC(),
	}
}

func TestGetQuote_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockQuoteService
		query  string
		status int
		assert func(t *testing.T, svc *mockQuoteService, body []byte)
	}{
		{
			name:   "missing ticker",
			svc:    &mockQuoteService{},
			query:  "/api/v1/quote?market=domestic",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid market",
			svc:    &mockQuoteService{},
			query:  "/api/v1/quote?ticker=PETR4&market=mars",
			status: http.StatusBadRequest,
		},
		{
			name:   "not found",
			svc:    &mockQuoteService{rec: nil},
			query:  "/api/v1/quote?ticker=XXXX9&market=domestic",
			status: http.StatusNotFound,
		},
		{
			name:   "success",
			svc:    &mockQuoteService{rec: sampleRecord()},
			query:  "/api/v1/quote?ticker=petr4&market=domestic",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockQuoteService, body []byte) {
				var out dto.QuoteResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Ticker != "PETR4" || out.CurrentPrice != "38.5" || out.Currency != "BRL" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if svc.lastTicker != "PETR4" {
					t.Fatalf("expected uppercased ticker, got %q", svc.lastTicker)
				}
				if svc.lastRefresh {
					t.Fatalf("refresh should default to false")
				}
			},
		},
		{
			name:   "legacy market spelling",
			svc:    &mockQuoteService{rec: sampleRecord()},
			query:  "/api/v1/quote?ticker=PETR4&market=brazilian",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockQuoteService, _ []byte) {
				if svc.lastMarket != models.MarketDomestic {
					t.Fatalf("expected domestic market, got %q", svc.lastMarket)
				}
			},
		},
		{
			name:   "refresh flag",
			svc:    &mockQuoteService{rec: sampleRecord()},
			query:  "/api/v1/quote?ticker=PETR4&market=domestic&refresh=true",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockQuoteService, _ []byte) {
				if !svc.lastRefresh {
					t.Fatalf("expected refresh flag to pass through")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestClearCache(t *testing.T) {
	svc := &mockQuoteService{}
	r := setupRouterWithMock(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cache/clear", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !svc.cleared {
		t.Fatalf("expected ClearCache to be called on the service")
	}
}

func TestGetProviders(t *testing.T) {
	r := setupRouterWithMock(&mockQuoteService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out["domestic"]) != 2 || out["domestic"][0] != "brapi" {
		t.Fatalf("unexpected domestic chain: %+v", out)
	}
	if len(out["foreign"]) != 1 || out["foreign"][0] != "yahoo" {
		t.Fatalf("unexpected foreign chain: %+v", out)
	}
}
