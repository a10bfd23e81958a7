package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCache(t *testing.T, regions map[string]config.CachePolicy) *MemoryCache {
	t.Helper()
	reg, err := NewRegistry(config.CacheConfig{
		Default: config.CachePolicy{Capacity: 10, TTL: time.Hour},
		Regions: regions,
	})
	require.NoError(t, err)
	return NewMemoryCache(reg)
}

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, nil)

	_, ok, err := c.Get(ctx, "customer", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "customer", 1, []byte(`{"id":1}`)))

	v, ok, err := c.Get(ctx, "customer", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, string(v))

	// regions are independent
	_, ok, _ = c.Get(ctx, "employee", 1)
	assert.False(t, ok)
}

func TestMemoryCache_Evict(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, nil)

	require.NoError(t, c.Set(ctx, "zone", 1, []byte("a")))
	require.NoError(t, c.Set(ctx, "zone", 2, []byte("b")))
	require.NoError(t, c.Evict(ctx, "zone", 1))

	_, ok, _ := c.Get(ctx, "zone", 1)
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "zone", 2)
	assert.True(t, ok)
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, nil)

	require.NoError(t, c.Set(ctx, "facility.zones", 4, []byte("[]")))
	require.NoError(t, c.Set(ctx, "facility.zones", 5, []byte("[]")))
	require.NoError(t, c.Set(ctx, "facility", 4, []byte("{}")))

	require.NoError(t, c.Clear(ctx, "facility.zones"))

	assert.Equal(t, 0, c.Len("facility.zones"))
	assert.Equal(t, 1, c.Len("facility"))
}

func TestMemoryCache_CapacityBound(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, map[string]config.CachePolicy{
		"material": {Capacity: 2},
	})

	for id := int64(1); id <= 3; id++ {
		require.NoError(t, c.Set(ctx, "material", id, []byte("m")))
	}

	assert.Equal(t, 2, c.Len("material"))
	_, ok, _ := c.Get(ctx, "material", 1)
	assert.False(t, ok, "least recently used entry should be gone")
	_, ok, _ = c.Get(ctx, "material", 3)
	assert.True(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, map[string]config.CachePolicy{
		"service": {TTL: 20 * time.Millisecond},
	})

	require.NoError(t, c.Set(ctx, "service", 1, []byte("s")))
	time.Sleep(60 * time.Millisecond)

	_, ok, err := c.Get(ctx, "service", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_UnknownRegion(t *testing.T) {
	ctx := context.Background()
	c := newTestMemoryCache(t, nil)

	_, _, err := c.Get(ctx, "invoice", 1)
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, "invoice", 1, nil))
	assert.Error(t, c.Evict(ctx, "invoice", 1))
	assert.Error(t, c.Clear(ctx, "invoice"))
	assert.Equal(t, 0, c.Len("invoice"))
}
