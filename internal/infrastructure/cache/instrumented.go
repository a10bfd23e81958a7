package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache stores serialized values by region and numeric key
type Cache interface {
	Get(ctx context.Context, region string, key int64) ([]byte, bool, error)
	Set(ctx context.Context, region string, key int64, value []byte) error
	Evict(ctx context.Context, region string, key int64) error
	Clear(ctx context.Context, region string) error
}

// InstrumentedCache counts lookups of the wrapped cache per region and outcome
type InstrumentedCache struct {
	next     Cache
	requests *prometheus.CounterVec
	evicts   *prometheus.CounterVec
}

// NewInstrumentedCache wraps next and registers its collectors on reg
func NewInstrumentedCache(next Cache, reg prometheus.Registerer) *InstrumentedCache {
	c := &InstrumentedCache{
		next: next,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "erp",
				Subsystem: "cache",
				Name:      "requests_total",
				Help:      "Cache lookups by region and result (hit, miss, error).",
			},
			[]string{"region", "result"},
		),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "erp",
				Subsystem: "cache",
				Name:      "evictions_total",
				Help:      "Explicit evictions by region and kind (key, region).",
			},
			[]string{"region", "kind"},
		),
	}
	reg.MustRegister(c.requests, c.evicts)
	return c
}

// Get reads through to the wrapped cache and records the outcome
func (c *InstrumentedCache) Get(ctx context.Context, region string, key int64) ([]byte, bool, error) {
	v, ok, err := c.next.Get(ctx, region, key)
	switch {
	case err != nil:
		c.requests.WithLabelValues(region, "error").Inc()
	case ok:
		c.requests.WithLabelValues(region, "hit").Inc()
	default:
		c.requests.WithLabelValues(region, "miss").Inc()
	}
	return v, ok, err
}

// Set writes through to the wrapped cache
func (c *InstrumentedCache) Set(ctx context.Context, region string, key int64, value []byte) error {
	return c.next.Set(ctx, region, key, value)
}

// Evict removes key and records the eviction
func (c *InstrumentedCache) Evict(ctx context.Context, region string, key int64) error {
	c.evicts.WithLabelValues(region, "key").Inc()
	return c.next.Evict(ctx, region, key)
}

// Clear empties region and records the eviction
func (c *InstrumentedCache) Clear(ctx context.Context, region string) error {
	c.evicts.WithLabelValues(region, "region").Inc()
	return c.next.Clear(ctx, region)
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
	_ Cache = (*InstrumentedCache)(nil)
	_ Cache = NoCache{}
)
