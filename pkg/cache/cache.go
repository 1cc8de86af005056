// Package cache provides pluggable byte caches and the key scheme used to
// memoize layout generation and rendered artifacts.
//
// Backends: file (CLI), in-process LRU, Redis (server deployments), and a
// null cache for tests or disabled caching. Keys are derived from content
// hashes, so identical configurations always hit the same entry regardless
// of where they were generated.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry class. Layout results are pure functions of their
// config hash and could live forever; bounded TTLs keep storage in check.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
	TTLHTTP     = 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A ttl of 0 stores the entry
// without expiration; a negative ttl writes an already-expired entry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
