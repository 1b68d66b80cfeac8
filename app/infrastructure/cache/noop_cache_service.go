package cache

import (
	"context"
	"time"
)

// NoOpCacheService disables persistence; every lookup misses.
type NoOpCacheService struct{}

func (n *NoOpCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return nil
}

func (n *NoOpCacheService) Get(ctx context.Context, key string, dest any) error {
	return ErrCacheMiss
}

func (n *NoOpCacheService) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoOpCacheService) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (n *NoOpCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (n *NoOpCacheService) Close() error {
	return nil
}

func (n *NoOpCacheService) HealthCheck(ctx context.Context) error {
	return nil
}
