// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/migrations"
	"github.com/qolzam/jobly/internal/database/postgres"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/pkg/log"
)

// BaseService holds the shared infrastructure every domain service is built on.
type BaseService struct {
	DB    *postgres.Client
	Cache *cache.GenericCacheService
}

// NewBaseService connects to PostgreSQL, applies migrations when enabled, and
// opens the configured cache backend.
func NewBaseService(ctx context.Context, cfg *platformconfig.Config) (*BaseService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("platform configuration is required")
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(postgres.URL(cfg.Database.Postgres)); err != nil {
			return nil, err
		}
		log.Info("Database migrations applied")
	}

	client, err := postgres.NewClient(ctx, cfg.Database.Postgres)
	if err != nil {
		return nil, err
	}

	c, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	if c == nil {
		log.Info("Cache disabled")
	} else {
		log.Info("Cache backend: %s", cfg.Cache.Backend)
	}

	return NewBaseServiceWithDB(client, cache.NewGenericCacheService(c, cfg.Cache.Prefix, cfg.Cache.TTL)), nil
}

// NewBaseServiceWithDB creates a BaseService with an existing client and cache.
func NewBaseServiceWithDB(client *postgres.Client, cacheService *cache.GenericCacheService) *BaseService {
	return &BaseService{DB: client, Cache: cacheService}
}

// HealthCheck reports whether the database is reachable.
func (s *BaseService) HealthCheck(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("database client not configured")
	}
	return s.DB.HealthCheck(ctx)
}

// Close releases the cache and the connection pool.
func (s *BaseService) Close() error {
	var errs *multierror.Error
	if err := s.Cache.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("cache: %w", err))
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errs.ErrorOrNil()
}
