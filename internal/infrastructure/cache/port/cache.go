package port

import (
	"context"
	"time"
)

// Cache is the key-value cache contract used for read-side acceleration
// (chat lists, unread counts). Implementations must be concurrency-safe and
// context-aware. Values are opaque strings; serialization is up to callers.
type Cache interface {
	// Get fetches the value for key. A miss is reported as ("", ErrMiss);
	// other errors indicate transport or server failures.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key. Zero or negative TTL means no expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes keys and returns how many were removed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping verifies connectivity with the backend.
	Ping(ctx context.Context) error

	// Close releases resources held by the cache.
	Close() error
}

// ErrMiss signals a cache miss in a typed way so callers can distinguish
// misses from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (errMiss) Error() string { return "cache: miss" }
