package main

//
//  @title           quotepulse API
//  @version         1.0
//  @description     Quote resolution engine for equity and fund positions.
//  @termsOfService  https://github.com/guttosm/quotepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/quotepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quote
//  @tag.description Endpoints for resolving quotes and managing the cache
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/quotepulse/config"
	_ "github.com/guttosm/quotepulse/docs" // swagger docs
	"github.com/guttosm/quotepulse/internal/app"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// fetchOnce resolves a single quote from the command line and prints it
// as JSON, mirroring what the API would return. Used for smoke-testing
// provider credentials without standing up the server.
func fetchOnce(ctx context.Context, ticker, market string, refresh bool) error {
	m, err := models.ParseMarket(market)
	if err != nil {
		return err
	}

	svc := app.NewQuoteService(config.AppConfig)
	rec := svc.GetQuote(ctx, ticker, m, refresh)
	if rec == nil {
		return errors.New("no quote available")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewQuoteResponse(rec))
}

// main is the entry point of the quotepulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API exposing quote resolution.
//   - fetch: Resolves one quote and prints it as JSON.
//
// Flags:
//   - --mode:    Execution mode ("api" or "fetch"). Default: "api".
//   - --ticker:  Ticker for fetch mode (e.g., "PETR4").
//   - --market:  Market for fetch mode ("domestic" or "foreign").
//   - --refresh: Bypass the cache in fetch mode (no effect on a cold start).
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	ticker := flag.String("ticker", "", "Ticker to resolve in fetch mode")
	market := flag.String("market", "domestic", "Market profile in fetch mode: domestic or foreign")
	refresh := flag.Bool("refresh", false, "Force a live refetch in fetch mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "fetch":
		// One-shot lookup mode
		if *ticker == "" {
			logger.L().Fatal().Msg("--ticker is required in fetch mode")
		}
		if err := fetchOnce(ctx, *ticker, *market, *refresh); err != nil {
			logger.L().Fatal().Str("ticker", *ticker).Err(err).Msg("fetch failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
