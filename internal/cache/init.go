package cache

import (
	"github.com/netserve/catalog/internal/config"
	"github.com/netserve/catalog/internal/logger"
	redisClient "github.com/netserve/catalog/internal/redis"
)

// CacheType represents the type of cache to use
type CacheType string

const (
	// CacheTypeInMemory represents an in-memory cache
	CacheTypeInMemory CacheType = "inmemory"

	// CacheTypeRedis represents a Redis-backed cache
	CacheTypeRedis CacheType = "redis"
)

// Initialize initializes the cache system based on the configured type.
func Initialize(cfg *config.Configuration, log *logger.Logger, rdb *redisClient.Client) Cache {
	if !cfg.Cache.Enabled {
		log.Infow("cache disabled")
		return NewInMemoryCache()
	}

	log.Infow("initializing cache system", "type", cfg.Cache.Type)

	var cache Cache

	switch CacheType(cfg.Cache.Type) {
	case CacheTypeRedis:
		InitializeRedisCache(rdb, log)
		cache = GetRedisCache()
	case CacheTypeInMemory:
		fallthrough
	default:
		InitializeInMemoryCache()
		cache = GetInMemoryCache()
	}

	return cache
}
