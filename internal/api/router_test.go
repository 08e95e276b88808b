package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns a valid record so the handler returns 200
	svc := &mockQuoteService{rec: sampleRecord()}
	h := NewHandler(svc)
	r := NewRouter(h)

	// Hit the quote route through the router created by NewRouter
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote?ticker=PETR4&market=domestic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// Ensure JSON body has the quote fields
	var out dto.QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Ticker != "PETR4" || out.Source != "brapi" || out.Sector != "Energy" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_CacheClearRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockQuoteService{}
	r := NewRouter(NewHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cache/clear", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !svc.cleared {
		t.Fatalf("expected the route to flush the cache")
	}
}
