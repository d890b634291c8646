package cache

import (
	"context"
	"time"
)

// Cache stores serialized HTTP responses for the read-only facet routes
type Cache interface {
	// Get retrieves a value. A backend failure reads as a miss.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores a value with a TTL. ttl <= 0 uses the cache default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache
	Delete(ctx context.Context, key string) error

	// Clear removes every value this cache owns
	Clear(ctx context.Context) error

	// Close releases background workers and connections
	Close() error
}

// Stats provides statistics about cache usage
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Evictions int64 `json:"evictions"`
	Size      int64 `json:"size"`
	MaxSize   int64 `json:"maxSize"`
}

// StatsProvider is implemented by caches that track usage
type StatsProvider interface {
	Stats() Stats
}
