package cache

import (
	"context"
	"fmt"
	"io"

	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// NoCache is a cache that never holds anything
type NoCache struct{}

func (NoCache) Get(context.Context, string, int64) ([]byte, bool, error) { return nil, false, nil }
func (NoCache) Set(context.Context, string, int64, []byte) error         { return nil }
func (NoCache) Evict(context.Context, string, int64) error               { return nil }
func (NoCache) Clear(context.Context, string) error                      { return nil }

// Factory creates the entity cache selected by configuration
type Factory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	registerer            prometheus.Registerer
	allowInMemoryFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory and the caches it creates
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithInMemoryFallback controls whether to fall back to the memory cache when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// WithMetrics wraps created caches so their lookups are counted on reg
func WithMetrics(reg prometheus.Registerer) FactoryOption {
	return func(f *Factory) {
		f.registerer = reg
	}
}

// NewFactory creates a new factory
func NewFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds the configured cache. The returned closer releases backend
// connections and is never nil.
func (f *Factory) Create() (Cache, io.Closer, error) {
	reg, err := NewRegistry(f.cacheConfig)
	if err != nil {
		return nil, nil, err
	}

	c, closer, err := f.create(reg)
	if err != nil {
		return nil, nil, err
	}
	if f.registerer != nil {
		c = NewInstrumentedCache(c, f.registerer)
	}
	return c, closer, nil
}

func (f *Factory) create(reg *Registry) (Cache, io.Closer, error) {
	switch f.cacheConfig.Backend {
	case "none":
		f.logger.Info("entity cache disabled")
		return NoCache{}, nopCloser{}, nil
	case "redis":
		rc, err := NewRedisCache(RedisConfig{
			Addr:      f.redisConfig.Addr(),
			Password:  f.redisConfig.Password,
			DB:        f.redisConfig.DB,
			KeyPrefix: f.cacheConfig.KeyPrefix,
		}, reg)
		if err == nil {
			f.logger.Info("using Redis entity cache", zap.String("addr", f.redisConfig.Addr()))
			return rc, rc, nil
		}
		if !f.allowInMemoryFallback {
			return nil, nil, fmt.Errorf("Redis required for entity cache but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory entity cache. "+
			"Instances will not share cached entities.",
			zap.Error(err),
		)
	}

	f.logger.Info("using in-memory entity cache", zap.Int("regions", len(reg.Regions())))
	return NewMemoryCache(reg, WithMemoryLogger(f.logger)), nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
