package cache

import (
	"context"
	"fmt"

	"github.com/qolzam/jobly/internal/platform/config"
)

// New creates the backend selected by cfg.Backend. It returns a nil Cache when
// caching is disabled.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch CacheType(cfg.Backend) {
	case CacheTypeMemory:
		return NewMemoryCache(cfg.CleanupInterval), nil
	case CacheTypeRedis:
		return NewRedisCache(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, cfg.Backend)
	}
}
