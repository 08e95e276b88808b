package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/ratelimit"
)

// ErrAllProvidersExhausted means every adapter in the chain was attempted
// and none produced a usable record.
var ErrAllProvidersExhausted = errors.New("all providers exhausted")

// Chain tries provider adapters strictly in priority order until one
// returns a record with a positive price.
//
// Attempts are sequential, never parallel, so provider priority and rate
// limits are respected. No adapter is retried within one resolution;
// every adapter failure is logged and converted into "try the next one",
// and nothing below the chain boundary propagates to callers except
// ErrAllProvidersExhausted.
type Chain struct {
	adapters []provider.Adapter
	pacer    *ratelimit.Pacer
	log      zerolog.Logger
}

// NewChain builds a chain over the adapters in the given priority order.
func NewChain(pacer *ratelimit.Pacer, adapters ...provider.Adapter) *Chain {
	return &Chain{
		adapters: adapters,
		pacer:    pacer,
		log:      logger.With("chain"),
	}
}

// Order returns the names of the adapters that would be attempted for a
// market, in attempt order. It is a pure function of the market and the
// adapters' construction-time configuration, so repeated calls always
// agree; the resolver itself and the readiness probe both rely on it.
func (c *Chain) Order(market models.Market) []string {
	names := make([]string, 0, len(c.adapters))
	for _, a := range c.adapters {
		if a.Available(market) {
			names = append(names, a.Name())
		}
	}
	return names
}

// Resolve walks the chain for one (ticker, market) lookup.
//
// Each attempt waits on the pacer first, then fetches. A returned record
// with a non-positive price counts as a failure, exactly as if the
// adapter had errored. When the list is exhausted the chain reports
// ErrAllProvidersExhausted; context cancellation is the only error that
// aborts the walk early.
func (c *Chain) Resolve(ctx context.Context, ticker string, market models.Market) (*provider.Result, error) {
	attempted := 0
	for _, a := range c.adapters {
		if !a.Available(market) {
			continue
		}
		attempted++

		if err := c.pacer.Wait(ctx, a.Name()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		res, err := a.Fetch(ctx, ticker, market)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn().
				Str("provider", a.Name()).
				Str("ticker", ticker).
				Str("market", string(market)).
				Err(err).
				Msg("provider attempt failed")
			continue
		}
		if !res.Record.Valid() {
			c.log.Warn().
				Str("provider", a.Name()).
				Str("ticker", ticker).
				Msg("provider returned non-positive price")
			continue
		}

		c.log.Debug().
			Str("provider", a.Name()).
			Str("ticker", ticker).
			Str("price", res.Record.CurrentPrice.String()).
			Msg("quote resolved")
		return res, nil
	}

	c.log.Warn().
		Str("ticker", ticker).
		Str("market", string(market)).
		Int("attempted", attempted).
		Msg("no provider produced a quote")
	return nil, fmt.Errorf("%s %s: %w", ticker, market, ErrAllProvidersExhausted)
}
