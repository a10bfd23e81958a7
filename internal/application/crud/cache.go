package crud

import "context"

// Cache stores serialized transfer objects by region and key. A region is
// either an entity name ("customer-order") or a collection relation
// ("customer-order.materials") keyed by the owning entity's id.
type Cache interface {
	Get(ctx context.Context, region string, key int64) ([]byte, bool, error)
	Set(ctx context.Context, region string, key int64, value []byte) error
	Evict(ctx context.Context, region string, key int64) error
	Clear(ctx context.Context, region string) error
}

type noCache struct{}

func (noCache) Get(context.Context, string, int64) ([]byte, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, string, int64, []byte) error         { return nil }
func (noCache) Evict(context.Context, string, int64) error               { return nil }
func (noCache) Clear(context.Context, string) error                      { return nil }
