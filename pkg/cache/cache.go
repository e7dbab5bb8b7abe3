// Package cache stores finished packing solutions so that reproducible runs
// are not recomputed.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several machines or workers
//   - [NullCache]: stores nothing (--no-cache)
//
// # Keys
//
// Only seeded runs are reproducible, so only they are cached. [Keyer]
// derives a key from every parameter that influences the result: biscuit
// count, pan size, iteration budget, seed and annealing schedule. Changing
// any of them yields a different key.
//
//	k := cache.NewDefaultKeyer()
//	key := k.SolutionKey(cache.SolutionKeyOpts{Biscuits: 5, Width: 100, Length: 100, Iterations: 1000, Seed: 42})
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. An expired or
	// unreadable entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
