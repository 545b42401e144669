package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// may be Redis or in-memory; callers must treat a miss and a hit the same
// way apart from latency.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found is false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
