package storage

import (
	"context"
	"fmt"

	catalogapp "github.com/ceilingworks/erp/internal/application/catalog"
	infraconfig "github.com/ceilingworks/erp/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New returns the object storage selected by cfg.Backend, or nil for the
// inline backend, which keeps image bytes in the database.
func New(ctx context.Context, cfg *infraconfig.StorageConfig, logger *zap.Logger) (catalogapp.ObjectStorage, error) {
	switch cfg.Backend {
	case "", "inline":
		return nil, nil
	case "memory":
		logger.Warn("using in-memory image storage; images are lost on restart")
		return NewMemoryObjectStorage(), nil
	case "s3":
		s, err := NewS3ObjectStorage(ctx, cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("using S3 image storage", zap.String("bucket", s.Bucket()))
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
