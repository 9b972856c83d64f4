// Package cache provides pluggable byte caches for the maze pipeline.
//
// Generation, solving and rendering are deterministic given their inputs, so
// their outputs cache well. Three backends are provided:
//   - [FileCache]: directory-based cache for CLI usage (XDG cache dir)
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so every pipeline stage derives its key the
// same way regardless of entry point.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
