package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/api"
	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/httpx"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/alphavantage"
	"github.com/guttosm/quotepulse/internal/provider/brapi"
	"github.com/guttosm/quotepulse/internal/provider/ratelimit"
	"github.com/guttosm/quotepulse/internal/provider/twelvedata"
	"github.com/guttosm/quotepulse/internal/provider/yahoo"
	"github.com/guttosm/quotepulse/internal/quote"
	"github.com/guttosm/quotepulse/internal/resolver"
)

// NewQuoteService assembles the full quote engine from configuration:
// shared HTTP client, the provider adapters in priority order, the pacer,
// the chain resolver, and the TTL cache behind the façade.
//
// The adapter order is fixed (Twelve Data, Alpha Vantage, brapi, Yahoo);
// which of them participate for a given market depends only on the
// configured credentials, so the resulting chain is deterministic.
func NewQuoteService(cfg config.Config) *quote.Service {
	client := httpx.New(cfg.Quote.HTTPTimeout)

	adapters := []provider.Adapter{
		twelvedata.New(client, "", cfg.Providers.TwelveData.APIKey),
		alphavantage.New(client, "", cfg.Providers.AlphaVantage.APIKey),
		brapi.New(client, "", cfg.Providers.Brapi.APIKey),
		yahoo.New(client, ""),
	}

	pacer := ratelimit.NewPacer(map[string]time.Duration{
		twelvedata.Name:   cfg.Providers.TwelveData.MinInterval,
		alphavantage.Name: cfg.Providers.AlphaVantage.MinInterval,
		brapi.Name:        cfg.Providers.Brapi.MinInterval,
		yahoo.Name:        cfg.Providers.Yahoo.MinInterval,
	})

	chain := resolver.NewChain(pacer, adapters...)
	cache := quote.NewCache(cfg.Quote.CacheTTL)
	return quote.NewService(cache, chain)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the quote engine via NewQuoteService().
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Assemble the quote engine (adapters -> chain -> cache -> façade)
	svc := NewQuoteService(cfg)

	// Initialize HTTP handler layer (engine to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes. Readiness requires a usable
	// provider chain for both market profiles.
	healthHandler := api.NewHealthHandler(func() error {
		for _, m := range []models.Market{models.MarketDomestic, models.MarketForeign} {
			if len(svc.ProviderOrder(m)) == 0 {
				return fmt.Errorf("no providers available for market %s", m)
			}
		}
		return nil
	})
	healthHandler.Register(router)

	// The engine holds no external connections; cleanup only flushes the
	// in-memory cache so shutdown is symmetrical with startup.
	cleanup := func() {
		svc.ClearCache()
	}

	return router, cleanup, nil
}
