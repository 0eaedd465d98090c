package market

import (
	"strings"
	"sync"

	"github.com/quantego/coinsight/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes upstream fetches by key for the lifetime of the process.
// Concurrent callers for the same missing key share a single in-flight
// fetch. Only successful results are stored: a failed fetch is reported to
// every waiter but leaves the key empty, so the next call retries.
//
// There is no TTL or eviction; only the full-listing snapshot refreshes
// periodically.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
	group   singleflight.Group
	metrics *metrics.Registry
}

// NewCache creates an empty cache. reg may be nil.
func NewCache(reg *metrics.Registry) *Cache {
	return &Cache{
		entries: make(map[string]any),
		metrics: reg,
	}
}

// GetOrFetch returns the cached value for key, or invokes fetch exactly
// once across all concurrent callers and caches its result on success.
func (c *Cache) GetOrFetch(key string, fetch func() (any, error)) (any, error) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.metrics.RecordCacheHit()
		return v, nil
	}

	c.metrics.RecordCacheMiss()

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A flight that completed between the read above and this call may
		// have stored the value already.
		c.mu.RLock()
		v, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fetch()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = v
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Key builds a deterministic cache key from an endpoint name and its
// parameters.
func Key(endpoint string, params ...string) string {
	return endpoint + ":" + strings.Join(params, ":")
}
