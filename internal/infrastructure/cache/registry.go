package cache

import (
	"fmt"
	"sort"
	"time"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
)

// Policy bounds a single cache region
type Policy struct {
	Capacity int
	TTL      time.Duration
}

// EntityRegions lists the cache region of every entity
var EntityRegions = []string{
	"customer",
	"employee",
	"facility",
	"zone",
	"measurement",
	"material",
	"material-measurement",
	"service",
	"attached-image",
	"material-availability",
	"service-availability",
	"material-request",
	"material-arrival",
	"customer-order",
	"order-material",
	"order-service",
	"material-reserve",
	"service-quota",
	"feedback",
}

// CollectionRegions lists the cache region of every to-many relation,
// named owner.relation and keyed by the owner's id.
var CollectionRegions = []string{
	"facility.zones",
	"material.images",
	"material.measurements",
	"customer-order.materials",
	"customer-order.services",
}

// Registry is the fixed table of region policies. It is built once at
// startup and shared by reference; it is never modified afterwards.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry builds the registry from the cache configuration. Every known
// region gets the default policy unless the configuration overrides it.
// Images carry their bytes, so they and the per-material image listings
// default to smaller, shorter-lived regions.
func NewRegistry(cfg config.CacheConfig) (*Registry, error) {
	def := Policy{Capacity: cfg.Default.Capacity, TTL: cfg.Default.TTL}
	if def.Capacity <= 0 {
		def.Capacity = 1000
	}
	if def.TTL <= 0 {
		def.TTL = time.Hour
	}

	policies := make(map[string]Policy, len(EntityRegions)+len(CollectionRegions))
	for _, name := range EntityRegions {
		policies[name] = def
	}
	for _, name := range CollectionRegions {
		policies[name] = def
	}
	policies["attached-image"] = Policy{Capacity: 100, TTL: 10 * time.Minute}
	policies["material.images"] = Policy{Capacity: 20, TTL: 10 * time.Minute}

	for name, override := range cfg.Regions {
		p, ok := policies[name]
		if !ok {
			return nil, fmt.Errorf("cache: unknown region %q in configuration", name)
		}
		if override.Capacity > 0 {
			p.Capacity = override.Capacity
		}
		if override.TTL > 0 {
			p.TTL = override.TTL
		}
		policies[name] = p
	}

	return &Registry{policies: policies}, nil
}

// Policy returns the policy of region
func (r *Registry) Policy(region string) (Policy, error) {
	p, ok := r.policies[region]
	if !ok {
		return Policy{}, errUnknownRegion(region)
	}
	return p, nil
}

// Regions returns every region name in sorted order
func (r *Registry) Regions() []string {
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func errUnknownRegion(name string) error {
	return fmt.Errorf("cache: unknown region %q", name)
}
