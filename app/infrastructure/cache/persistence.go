package cache

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

const persistTimeout = 2 * time.Second

func persistKey(key Key) string {
	return PersistKeyPrefix + key.String()
}

func (c *QueryCache) persist(key Key, value any) {
	if c.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := c.persister.Set(ctx, persistKey(key), value, c.persistTTL); err != nil {
		logger.GetLogger().WithFields(logrus.Fields{"key": key.String()}).Warnf("cache: failed to persist query: %v", err)
	}
}

func (c *QueryCache) unpersist(prefixes ...Key) {
	if c.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	for _, prefix := range prefixes {
		if err := c.persister.Delete(ctx, persistKey(prefix)); err != nil {
			logger.GetLogger().Warnf("cache: failed to drop persisted %s: %v", prefix, err)
		}
		if prefix.Params != "" {
			continue
		}
		// "?" is a single-character wildcard in redis globs and matches the literal separator
		if err := c.persister.DeletePattern(ctx, persistKey(prefix)+"?*"); err != nil {
			logger.GetLogger().Warnf("cache: failed to drop persisted variants of %s: %v", prefix, err)
		}
	}
}

func (c *QueryCache) unpersistExact(key Key) {
	if c.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := c.persister.Delete(ctx, persistKey(key)); err != nil {
		logger.GetLogger().Warnf("cache: failed to drop persisted %s: %v", key, err)
	}
}

// hydrate loads a persisted copy for a key that has never held a value in
// this process.
func hydrate[T any](ctx context.Context, c *QueryCache, key Key) (T, bool) {
	var value T
	if c.persister == nil {
		return value, false
	}
	c.mu.Lock()
	e, ok := c.entries[key]
	cold := !ok || (!e.hasValue && e.updatedAt.IsZero())
	c.mu.Unlock()
	if !cold {
		return value, false
	}
	if err := c.persister.Get(ctx, persistKey(key), &value); err != nil {
		return value, false
	}
	logger.GetLogger().WithFields(logrus.Fields{"key": key.String()}).Debug("cache: hydrated query from persister")
	return value, true
}
