package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nothing listens on port 1, so connecting fails fast
var unreachableRedis = config.RedisConfig{Host: "127.0.0.1", Port: 1}

func TestFactory_Memory(t *testing.T) {
	f := NewFactory(config.CacheConfig{Backend: "memory"}, unreachableRedis)

	c, closer, err := f.Create()
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.IsType(t, &MemoryCache{}, c)
	assert.NoError(t, closer.Close())
}

func TestFactory_None(t *testing.T) {
	f := NewFactory(config.CacheConfig{Backend: "none"}, unreachableRedis)

	c, _, err := f.Create()
	require.NoError(t, err)
	assert.Equal(t, NoCache{}, c)
}

func TestFactory_RedisFallback(t *testing.T) {
	f := NewFactory(config.CacheConfig{Backend: "redis"}, unreachableRedis)

	c, _, err := f.Create()
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, c)
}

func TestFactory_RedisWithoutFallback(t *testing.T) {
	f := NewFactory(config.CacheConfig{Backend: "redis"}, unreachableRedis, WithInMemoryFallback(false))

	_, _, err := f.Create()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Redis required")
}

func TestFactory_InvalidRegion(t *testing.T) {
	f := NewFactory(config.CacheConfig{
		Backend: "memory",
		Regions: map[string]config.CachePolicy{"nope": {Capacity: 1}},
	}, unreachableRedis)

	_, _, err := f.Create()
	assert.Error(t, err)
}

func TestFactory_WithMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	f := NewFactory(config.CacheConfig{
		Backend: "memory",
		Default: config.CachePolicy{Capacity: 10, TTL: time.Hour},
	}, unreachableRedis, WithMetrics(reg))

	c, _, err := f.Create()
	require.NoError(t, err)
	ic, ok := c.(*InstrumentedCache)
	require.True(t, ok)

	_, _, _ = c.Get(ctx, "customer", 1)
	require.NoError(t, c.Set(ctx, "customer", 1, []byte("x")))
	_, _, _ = c.Get(ctx, "customer", 1)
	_, _, _ = c.Get(ctx, "customer", 1)
	_, _, _ = c.Get(ctx, "unknown", 1)
	require.NoError(t, c.Clear(ctx, "customer"))

	assert.Equal(t, 1.0, testutil.ToFloat64(ic.requests.WithLabelValues("customer", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(ic.requests.WithLabelValues("customer", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ic.requests.WithLabelValues("unknown", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ic.evicts.WithLabelValues("customer", "region")))
}
