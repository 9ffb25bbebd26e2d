// Package cache provides byte-oriented caching for rendered topology
// artifacts (DOT text, SVG, PNG) with file, Redis and no-op backends.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys with optional
// expiry. A zero TTL means the entry never expires. Implementations
// report misses through the bool, not through errors.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKey builds the cache key for a rendered artifact: the output
// format plus a content hash of the DOT source, so any topology change
// invalidates naturally.
func RenderKey(dot string, format string) string {
	return "render:" + format + ":" + Hash([]byte(dot))
}

// DocumentKey builds the cache key for a serialized XML document.
func DocumentKey(xml []byte) string {
	return "document:" + Hash(xml)
}
