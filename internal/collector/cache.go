package collector

import (
	"sync"
	"time"

	"TrendAdvisor/internal/model"
)

// CachedFetcher memoizes FetchBars results keyed by (symbol, start, end).
// Entries expire after TTL; expired entries are dropped lazily on the next
// lookup for the same key and swept whenever the cache grows past maxEntries.
// Errors are never cached.
type CachedFetcher struct {
	inner      Fetcher
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

type cacheKey struct {
	symbol string
	start  int64
	end    int64
}

type cacheEntry struct {
	bars      []model.OHLCV
	fetchedAt time.Time
}

// NewCachedFetcher wraps a Fetcher with a TTL memoization layer.
func NewCachedFetcher(inner Fetcher, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		inner:      inner,
		ttl:        ttl,
		maxEntries: 256,
		now:        time.Now,
		entries:    make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() + "+cache" }

func (c *CachedFetcher) FetchBars(symbol string, start, end time.Time) ([]model.OHLCV, error) {
	key := cacheKey{symbol: symbol, start: start.Unix(), end: end.Unix()}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.now().Sub(e.fetchedAt) < c.ttl {
			bars := e.bars
			c.mu.Unlock()
			return bars, nil
		}
		delete(c.entries, key)
	}
	c.mu.Unlock()

	bars, err := c.inner.FetchBars(symbol, start, end)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.maxEntries {
		c.sweepLocked()
	}
	c.entries[key] = cacheEntry{bars: bars, fetchedAt: c.now()}
	c.mu.Unlock()

	return bars, nil
}

// sweepLocked drops expired entries; if none expired, drops the oldest.
func (c *CachedFetcher) sweepLocked() {
	now := c.now()
	var oldestKey cacheKey
	var oldestAt time.Time
	dropped := false
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
			dropped = true
			continue
		}
		if oldestAt.IsZero() || e.fetchedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.fetchedAt
		}
	}
	if !dropped && !oldestAt.IsZero() {
		delete(c.entries, oldestKey)
	}
}
