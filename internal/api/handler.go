package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/domain/models"
)

// QuoteService is the façade surface the HTTP layer depends on.
// Defined here so handler tests can stub it without touching the engine.
type QuoteService interface {
	GetQuote(ctx context.Context, ticker string, market models.Market, forceRefresh bool) *models.QuoteRecord
	ClearCache()
	ProviderOrder(market models.Market) []string
}

// Handler provides HTTP handlers for the quote endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the quote service façade
//   - Translate records into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc QuoteService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc QuoteService) *Handler {
	return &Handler{svc: svc}
}

// GetQuote handles GET /api/v1/quote requests.
//
// Query Parameters:
//   - ticker (string, required): Instrument code (e.g., "PETR4", "AAPL").
//   - market (string, required): "domestic" or "foreign" (legacy spellings
//     "brazilian"/"us" accepted).
//   - refresh (bool, optional): bypass the cache and force a live refetch.
//
// Responses:
//   - 200 OK: Returns QuoteResponse with the resolved record.
//   - 400 Bad Request: Missing or invalid query parameters.
//   - 404 Not Found: No provider could produce a quote for the ticker.
//
// GetQuote godoc
// @Summary      Get a quote
// @Description  Resolves a current quote for a ticker through the provider chain, serving cached records while fresh
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        ticker   query     string  true   "Instrument code" example(PETR4)
// @Param        market   query     string  true   "Market profile: domestic or foreign" example(domestic)
// @Param        refresh  query     bool    false  "Force a live refetch, bypassing the cache"
// @Success      200      {object}  dto.QuoteResponse      "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Not Found"
// @Router       /api/v1/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	market, err := models.ParseMarket(c.Query("market"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid market, expected domestic or foreign", err))
		return
	}

	refresh := strings.EqualFold(c.Query("refresh"), "true") || c.Query("refresh") == "1"

	rec := h.svc.GetQuote(c.Request.Context(), ticker, market, refresh)
	if rec == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no quote available", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(rec))
}

// ClearCache handles POST /api/v1/cache/clear requests, flushing every
// cached quote so subsequent lookups hit the providers again. Backs the
// dashboard's "refresh all data" action.
//
// ClearCache godoc
// @Summary      Clear the quote cache
// @Description  Drops every cached quote; subsequent lookups re-run the provider chain
// @Tags         quote
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	h.svc.ClearCache()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetProviders handles GET /api/v1/providers requests, reporting the
// adapter attempt order per market so operators can verify which
// credentials took effect.
//
// GetProviders godoc
// @Summary      List the provider chain
// @Description  Returns the adapter attempt order per market for the current configuration
// @Tags         quote
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /api/v1/providers [get]
func (h *Handler) GetProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		string(models.MarketDomestic): h.svc.ProviderOrder(models.MarketDomestic),
		string(models.MarketForeign):  h.svc.ProviderOrder(models.MarketForeign),
	})
}
