// Package cache provides the session-scoped query cache used by the data
// access layer. It is an explicit key-value store with an invalidation API,
// injected where needed rather than held as an ambient singleton, so the
// catalog pipeline and invest workflow stay testable in isolation.
package cache

import (
	"strings"
	"sync"
)

// Cache is a concurrency-safe key-value store. Entries are whole values:
// updates replace, nothing is mutated in place.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]interface{})}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores a value under key, replacing any previous entry.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate removes the entry for key. Removing a missing key is a no-op.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidatePrefix removes every entry whose key starts with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]interface{})
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
