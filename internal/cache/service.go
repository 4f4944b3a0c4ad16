package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/qolzam/jobly/internal/pkg/log"
)

// GenericCacheService stores JSON documents in a Cache under a common prefix.
// A nil *GenericCacheService, or one built over a nil Cache, behaves as disabled.
type GenericCacheService struct {
	cache  Cache
	prefix string
	ttl    time.Duration
}

// NewGenericCacheService wraps c. prefix is prepended to every key.
func NewGenericCacheService(c Cache, prefix string, ttl time.Duration) *GenericCacheService {
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &GenericCacheService{cache: c, prefix: prefix, ttl: ttl}
}

// IsEnabled returns whether caching is enabled
func (s *GenericCacheService) IsEnabled() bool {
	return s != nil && s.cache != nil
}

// GetCached retrieves and unmarshals cached data into target.
func (s *GenericCacheService) GetCached(ctx context.Context, key string, target interface{}) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}
	if err := validateKey(key); err != nil {
		return err
	}

	fullKey := s.buildKey(key)
	data, err := s.cache.Get(ctx, fullKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.ErrorWithContext(ctx, "Cache get error for key %s: %v", fullKey, err)
		}
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.ErrorWithContext(ctx, "Cache data unmarshal error for key %s: %v", fullKey, err)
		return fmt.Errorf("cache decode %s: %w", fullKey, err)
	}
	return nil
}

// CacheData marshals data and stores it under key with the service TTL.
func (s *GenericCacheService) CacheData(ctx context.Context, key string, data interface{}) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}
	if err := validateKey(key); err != nil {
		return err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	fullKey := s.buildKey(key)
	if err := s.cache.Set(ctx, fullKey, payload, s.ttl); err != nil {
		log.ErrorWithContext(ctx, "Cache set error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// InvalidateKey removes a specific key from cache
func (s *GenericCacheService) InvalidateKey(ctx context.Context, key string) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}

	fullKey := s.buildKey(key)
	if err := s.cache.Delete(ctx, fullKey); err != nil {
		log.ErrorWithContext(ctx, "Cache key invalidation error for key %s: %v", fullKey, err)
		return err
	}
	return nil
}

// InvalidatePattern removes all keys matching pattern under the prefix.
func (s *GenericCacheService) InvalidatePattern(ctx context.Context, pattern string) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}

	fullPattern := s.buildKey(pattern)
	if err := s.cache.DeletePattern(ctx, fullPattern); err != nil {
		log.ErrorWithContext(ctx, "Cache pattern invalidation error for pattern %s: %v", fullPattern, err)
		return err
	}
	return nil
}

// Close closes the underlying cache
func (s *GenericCacheService) Close() error {
	if !s.IsEnabled() {
		return nil
	}
	return s.cache.Close()
}

func (s *GenericCacheService) buildKey(key string) string {
	return s.prefix + key
}

func validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	for _, char := range key {
		if char <= 32 || char >= 127 {
			return fmt.Errorf("%w: contains invalid character", ErrInvalidKey)
		}
	}
	if len(key) > 250 {
		return fmt.Errorf("%w: key too long (max 250 characters)", ErrInvalidKey)
	}
	return nil
}
