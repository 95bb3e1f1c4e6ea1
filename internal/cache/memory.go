package cache

import "sync"

// MemoryCache is an in-memory Cache implementation.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]interface{}
}

// NewMemoryCache creates an empty memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]interface{}),
	}
}

// Get returns the cached value for key, if present.
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.items[key]
	return value, ok
}

// GetOrCompute returns the cached value for key, computing and storing
// it on a miss. The first stored value wins; a concurrent computation
// for the same key discards its result in favor of the stored one.
func (c *MemoryCache) GetOrCompute(key string, compute func() interface{}) interface{} {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return value
	}

	computed := compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[key]; ok {
		return existing
	}
	c.items[key] = computed
	return computed
}

// Count returns the number of cached entries.
func (c *MemoryCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
