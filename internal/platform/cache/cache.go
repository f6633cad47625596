package cache

import (
	"sync"
	"time"
)

// Cache is a small in-memory TTL cache keyed by string.
type Cache[T any] struct {
	mu   sync.RWMutex
	data map[string]entry[T]
	ttl  time.Duration
	now  func() time.Time
}

type entry[T any] struct {
	value T
	exp   time.Time
}

// New returns an empty cache whose entries live for ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		data: make(map[string]entry[T]),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the cached value or false if absent or expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	item, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().After(item.exp) {
		return zero, false
	}
	return item.value, true
}

// Set stores value under key, dropping expired entries on the way.
func (c *Cache[T]) Set(key string, value T) {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if now.After(e.exp) {
			delete(c.data, k)
		}
	}
	c.data[key] = entry[T]{value: value, exp: now.Add(c.ttl)}
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
