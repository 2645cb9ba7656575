// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/cache"
	"github.com/dgoss28/clear-match-ai/internal/domain"
)

// CacheService provides caching functionality with type safety and error handling
type CacheService struct {
	cache *cache.InMemoryCache
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)

	// Start the cleanup routine
	c.StartCleanup(context.Background())

	return &CacheService{
		cache: c,
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	s.cache.Set(ctx, key, value)
	return nil
}

// Get retrieves a value from the cache with type conversion through JSON
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cached value: %w", err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// Delete removes a key from the cache
func (s *CacheService) Delete(ctx context.Context, key string) {
	s.cache.Delete(ctx, key)
}

// Close releases the cache resources
func (s *CacheService) Close() {
	s.cache.Close()
}
