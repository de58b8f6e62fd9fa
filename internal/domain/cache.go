package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value port used to hand generated files between requests.
// Values are opaque bytes; XLSX workbooks are stored as-is.
type Cache interface {
	// Get returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites key. An expiration of 0 keeps the value indefinitely.
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error

	// Delete does not fail for a missing key.
	Delete(ctx context.Context, key string) error

	// TTL returns the remaining lifetime of key, or ErrCacheMiss.
	TTL(ctx context.Context, key string) (time.Duration, error)

	Ping(ctx context.Context) error
}
