package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server, the quote engine, and the external
// market-data providers.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	QUOTE_CACHE_TTL_SEC=1800
//	PROVIDER_HTTP_TIMEOUT_SEC=10
//	TWELVE_DATA_API_KEY=xxx
//	ALPHA_VANTAGE_API_KEY=yyy
//	BRAPI_API_KEY=zzz
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Quote     QuoteConfig     // cache TTL and outbound HTTP timeout
	Providers ProvidersConfig // per-provider credentials and pacing
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// QuoteConfig holds the engine-wide knobs.
//
// Fields:
//   - CacheTTL: how long a fetched quote stays fresh (default 30 min).
//   - HTTPTimeout: fixed per-request timeout for provider calls.
type QuoteConfig struct {
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
}

// ProviderConfig holds one provider's credential and minimum call
// spacing. An empty APIKey disables a credentialed provider without
// raising an error; keyless providers ignore the field.
type ProviderConfig struct {
	APIKey      string
	MinInterval time.Duration
}

// ProvidersConfig groups the configuration of every supported provider.
type ProvidersConfig struct {
	TwelveData   ProviderConfig
	AlphaVantage ProviderConfig
	Brapi        ProviderConfig
	Yahoo        ProviderConfig
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and treated as immutable
// afterwards; services read from it instead of re-reading environment
// variables at call sites.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Provider credentials default to empty, which disables the provider;
// this is configuration, not an error. Pacing defaults mirror the
// providers' published request budgets.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("QUOTE_CACHE_TTL_SEC", 1800)
	viper.SetDefault("PROVIDER_HTTP_TIMEOUT_SEC", 10)

	viper.SetDefault("TWELVE_DATA_API_KEY", "")
	viper.SetDefault("TWELVE_DATA_MIN_INTERVAL_MS", 1000)
	viper.SetDefault("ALPHA_VANTAGE_API_KEY", "")
	viper.SetDefault("ALPHA_VANTAGE_MIN_INTERVAL_MS", 2000)
	viper.SetDefault("BRAPI_API_KEY", "")
	viper.SetDefault("BRAPI_MIN_INTERVAL_MS", 500)
	viper.SetDefault("YAHOO_MIN_INTERVAL_MS", 500)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Quote: QuoteConfig{
			CacheTTL:    time.Duration(viper.GetInt("QUOTE_CACHE_TTL_SEC")) * time.Second,
			HTTPTimeout: time.Duration(viper.GetInt("PROVIDER_HTTP_TIMEOUT_SEC")) * time.Second,
		},
		Providers: ProvidersConfig{
			TwelveData: ProviderConfig{
				APIKey:      viper.GetString("TWELVE_DATA_API_KEY"),
				MinInterval: time.Duration(viper.GetInt("TWELVE_DATA_MIN_INTERVAL_MS")) * time.Millisecond,
			},
			AlphaVantage: ProviderConfig{
				APIKey:      viper.GetString("ALPHA_VANTAGE_API_KEY"),
				MinInterval: time.Duration(viper.GetInt("ALPHA_VANTAGE_MIN_INTERVAL_MS")) * time.Millisecond,
			},
			Brapi: ProviderConfig{
				APIKey:      viper.GetString("BRAPI_API_KEY"),
				MinInterval: time.Duration(viper.GetInt("BRAPI_MIN_INTERVAL_MS")) * time.Millisecond,
			},
			Yahoo: ProviderConfig{
				MinInterval: time.Duration(viper.GetInt("YAHOO_MIN_INTERVAL_MS")) * time.Millisecond,
			},
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and sane, and
// terminates the application if they are not.
//
// This avoids unexpected runtime failures due to incomplete
// configuration. Provider credentials are deliberately not validated:
// missing keys disable providers rather than break startup.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Quote.CacheTTL <= 0 {
		missing = append(missing, "QUOTE_CACHE_TTL_SEC")
	}
	if AppConfig.Quote.HTTPTimeout <= 0 {
		missing = append(missing, "PROVIDER_HTTP_TIMEOUT_SEC")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
