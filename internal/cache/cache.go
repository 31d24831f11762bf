// Package cache is the response cache for the astrology endpoints. It is a
// decorator around the compute path: core computation packages never see it.
// Concurrent identical requests are collapsed with singleflight so an
// expensive chart is computed once.
package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"jyotish/internal/platform/metrics"
)

// Store is the serialized-response backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache wraps a Store with TTL policy, metrics and request collapsing.
type Cache struct {
	store   Store
	ttl     time.Duration
	metrics *metrics.Metrics
	group   singleflight.Group
}

// New builds a cache with the given backend and TTL.
func New(store Store, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{store: store, ttl: ttl, metrics: m}
}

// Do returns the cached response for key, or runs compute, stores the result
// and returns it. Store errors are treated as misses: a broken cache backend
// degrades latency, not availability.
func (c *Cache) Do(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error) {
	if v, ok, err := c.store.Get(ctx, key); err == nil && ok {
		if c.metrics != nil {
			c.metrics.IncrementCacheHit()
		}
		return v, nil
	}
	if c.metrics != nil {
		c.metrics.IncrementCacheMiss()
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		out, err := compute()
		if err != nil {
			return nil, err
		}
		_ = c.store.Set(ctx, key, out, c.ttl)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
