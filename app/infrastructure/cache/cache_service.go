package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CacheService.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheService is the external store that mirrors fresh query results so a
// restarted dashboard can hydrate without a round trip to the backend.
type CacheService interface {
	// Set stores a JSON encoded value with an expiration time
	Set(ctx context.Context, key string, value any, expiration time.Duration) error

	// Get decodes the stored value into dest, or returns ErrCacheMiss
	Get(ctx context.Context, key string, dest any) error

	// Delete removes a single key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection
	Close() error

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error
}
