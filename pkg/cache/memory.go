package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryEntries bounds the in-process cache when no size is given.
const DefaultMemoryEntries = 1024

// MemoryCache is a bounded in-process LRU cache. It backs the server's hot
// path in front of Redis and serves as the sole cache in single-process
// deployments.
type MemoryCache struct {
	lru *lru.Cache[string, memoryEntry]
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an LRU cache holding up to maxEntries entries.
// Non-positive sizes fall back to DefaultMemoryEntries.
func NewMemoryCache(maxEntries int) (Cache, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	l, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l}, nil
}

// Get retrieves a value, treating expired entries as misses.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value. A ttl of 0 stores it without expiration; a negative
// ttl writes an entry that is already expired.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl != 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Close does nothing for the memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
