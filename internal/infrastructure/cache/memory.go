package cache

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// MemoryCache keeps one bounded, expiring LRU per region in process memory.
// It is suitable for single-instance deployments and tests.
type MemoryCache struct {
	regions map[string]*expirable.LRU[int64, []byte]
	logger  *zap.Logger
}

// MemoryCacheOption is a functional option for configuring the memory cache
type MemoryCacheOption func(*MemoryCache)

// WithMemoryLogger sets the logger for the memory cache
func WithMemoryLogger(logger *zap.Logger) MemoryCacheOption {
	return func(c *MemoryCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewMemoryCache creates a memory cache with one LRU per registry region
func NewMemoryCache(reg *Registry, opts ...MemoryCacheOption) *MemoryCache {
	c := &MemoryCache{
		regions: make(map[string]*expirable.LRU[int64, []byte]),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, name := range reg.Regions() {
		p, _ := reg.Policy(name)
		c.regions[name] = expirable.NewLRU[int64, []byte](p.Capacity, nil, p.TTL)
	}
	return c
}

// Get returns the value stored under key in region
func (c *MemoryCache) Get(_ context.Context, region string, key int64) ([]byte, bool, error) {
	lru, err := c.region(region)
	if err != nil {
		return nil, false, err
	}
	v, ok := lru.Get(key)
	if ok {
		c.logger.Debug("memory cache hit", zap.String("region", region), zap.Int64("key", key))
	}
	return v, ok, nil
}

// Set stores value under key in region
func (c *MemoryCache) Set(_ context.Context, region string, key int64, value []byte) error {
	lru, err := c.region(region)
	if err != nil {
		return err
	}
	lru.Add(key, value)
	return nil
}

// Evict removes key from region
func (c *MemoryCache) Evict(_ context.Context, region string, key int64) error {
	lru, err := c.region(region)
	if err != nil {
		return err
	}
	lru.Remove(key)
	return nil
}

// Clear removes every entry of region
func (c *MemoryCache) Clear(_ context.Context, region string) error {
	lru, err := c.region(region)
	if err != nil {
		return err
	}
	lru.Purge()
	return nil
}

// Len returns the number of live entries in region
func (c *MemoryCache) Len(region string) int {
	if lru, ok := c.regions[region]; ok {
		return lru.Len()
	}
	return 0
}

func (c *MemoryCache) region(name string) (*expirable.LRU[int64, []byte], error) {
	lru, ok := c.regions[name]
	if !ok {
		return nil, errUnknownRegion(name)
	}
	return lru, nil
}
