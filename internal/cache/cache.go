// internal/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// InMemoryCache is a TTL cache with a background cleanup sweep.
type InMemoryCache struct {
	mu          sync.RWMutex
	entries     map[string]entry
	ttl         time.Duration
	cleanupFreq time.Duration
	done        chan struct{}
	closeOnce   sync.Once
}

func NewInMemoryCache(ttl, cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		entries:     make(map[string]entry),
		ttl:         ttl,
		cleanupFreq: cleanupFreq,
		done:        make(chan struct{}),
	}
}

// StartCleanup launches the background sweep. It stops when the context is
// cancelled or the cache is closed.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-ctx.Done():
				return
			case <-c.done:
				return
			}
		}
	}()
}

func (c *InMemoryCache) sweep() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[key]
	if !found || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *InMemoryCache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
