package cache

import (
	"strings"

	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

// NewCacheService selects the persistence tier from CACHE_TYPE
func NewCacheService() CacheService {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables.CACHE_TYPE)

	switch cacheType {
	case "redis":
		return NewRedisCacheService()
	case "valkey":
		return NewValkeyCacheService()
	case "", "none", "memory":
		return &NoOpCacheService{}
	default:
		logger.GetLogger().Warnf("cache: unknown CACHE_TYPE %q, persistence disabled", cacheType)
		return &NoOpCacheService{}
	}
}
