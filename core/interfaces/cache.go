// ABOUTME: Cache interface for storing serialized values with TTL support
// ABOUTME: Backed by memory, Redis, or SQLite implementations in infrastructure

package interfaces

import (
	"context"
	"time"
)

// Cache defines the contract for cache backends. Values are opaque bytes;
// callers handle their own serialization.
type Cache interface {
	// Get retrieves a value by key. A miss returns an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error
}
