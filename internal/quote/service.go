package quote

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/resolver"
)

// ChainResolver is the slice of the resolver the service depends on,
// kept as an interface so handler and service tests can stub it.
type ChainResolver interface {
	Resolve(ctx context.Context, ticker string, market models.Market) (*provider.Result, error)
	Order(market models.Market) []string
}

// Service is the only entry point callers use to obtain quotes.
//
// GetQuote composes cache, chain resolver, and field resolver. All
// errors below this boundary are absorbed: callers see a record or
// absence, never an error, and recovery/display policy stays with them.
type Service struct {
	cache *Cache
	chain ChainResolver
	group singleflight.Group
	log   zerolog.Logger
}

// NewService wires the façade over a cache and a chain resolver.
func NewService(cache *Cache, chain ChainResolver) *Service {
	return &Service{
		cache: cache,
		chain: chain,
		log:   logger.With("quote"),
	}
}

// GetQuote returns the current record for (ticker, market), or nil when
// no provider could produce one.
//
// A fresh cache entry short-circuits the lookup unless forceRefresh is
// set, in which case any existing entry is evicted and the chain always
// runs. Concurrent lookups for the same key are collapsed into a single
// chain resolution; late arrivals share the winner's record. A failed
// resolution writes nothing, so the next call retries every adapter.
func (s *Service) GetQuote(ctx context.Context, ticker string, market models.Market, forceRefresh bool) *models.QuoteRecord {
	code := market.Clean(ticker)

	if forceRefresh {
		s.cache.Evict(code, market)
	} else if rec, ok := s.cache.Get(code, market); ok {
		s.log.Debug().Str("ticker", code).Str("market", string(market)).Msg("cache hit")
		return rec
	}

	key := code + "|" + string(market)
	v, err, _ := s.group.Do(key, func() (any, error) {
		// A concurrent caller may have refreshed the key while this one
		// queued on the flight group.
		if !forceRefresh {
			if rec, ok := s.cache.Get(code, market); ok {
				return rec, nil
			}
		}

		res, err := s.chain.Resolve(ctx, code, market)
		if err != nil {
			return nil, err
		}
		resolver.ResolveFields(res)
		s.cache.Put(res.Record)
		rec := res.Record
		return &rec, nil
	})
	if err != nil {
		s.log.Debug().Str("ticker", code).Str("market", string(market)).Err(err).Msg("quote unavailable")
		return nil
	}

	rec := *v.(*models.QuoteRecord)
	return &rec
}

// ClearCache drops every cached record; the next lookup of any key goes
// back through the provider chain.
func (s *Service) ClearCache() {
	s.cache.Clear()
	s.log.Info().Msg("quote cache cleared")
}

// ProviderOrder exposes the chain's attempt order for a market, used by
// the readiness probe and the status endpoint.
func (s *Service) ProviderOrder(market models.Market) []string {
	return s.chain.Order(market)
}
