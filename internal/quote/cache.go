// Package quote holds the cache layer and the service façade callers use
// to obtain quotes. The façade composes cache, chain resolver, and field
// resolver; nothing below it is reachable from the HTTP layer.
package quote

import (
	"sync"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// DefaultTTL is how long a cached record stays fresh when the config does
// not override it.
const DefaultTTL = 30 * time.Minute

type cacheKey struct {
	ticker string
	market models.Market
}

type cacheEntry struct {
	record    models.QuoteRecord
	fetchedAt time.Time
}

// Cache stores one QuoteRecord per (ticker, market) with a TTL.
//
// All access goes through a single RWMutex; concurrent readers are cheap
// and writers are rare (one per refetch). Entries are only ever written
// from successful fetches and only removed by eviction or Clear; a
// failed fetch never touches the cache. The clock is injectable so TTL
// behavior is testable without sleeping.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache builds a cache with the given TTL; non-positive values select
// DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache) key(ticker string, market models.Market) cacheKey {
	return cacheKey{ticker: market.Clean(ticker), market: market}
}

// Get returns a copy of the cached record when present and unexpired.
func (c *Cache) Get(ticker string, market models.Market) (*models.QuoteRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[c.key(ticker, market)]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	rec := e.record
	return &rec, true
}

// Put stores or overwrites the entry for the record's (ticker, market).
func (c *Cache) Put(record models.QuoteRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(record.Ticker, record.Market)] = cacheEntry{
		record:    record,
		fetchedAt: c.now(),
	}
}

// Evict removes a single entry, if present.
func (c *Cache) Evict(ticker string, market models.Market) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, c.key(ticker, market))
}

// Clear drops every entry. Exposed to callers as the full-cache flush
// behind the dashboard's refresh-all action.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
