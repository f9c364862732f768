package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/netserve/catalog/internal/logger"
	redisClient "github.com/netserve/catalog/internal/redis"
	"github.com/redis/go-redis/v9"
)

const (
	// ScanCount determines how many keys to scan at once when using SCAN
	ScanCount = 100
)

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// Redis cache instance
var redisCache *RedisCache

// NewRedisCache creates a new Redis cache
func NewRedisCache(client *redisClient.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{
		client: client.GetClient(),
		log:    log,
	}
}

// InitializeRedisCache initializes the global Redis cache instance
func InitializeRedisCache(client *redisClient.Client, log *logger.Logger) {
	if redisCache == nil {
		redisCache = NewRedisCache(client, log)
	}
}

// GetRedisCache returns the global Redis cache instance
func GetRedisCache() *RedisCache {
	return redisCache
}

// Get retrieves a value from the cache
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	span := StartCacheSpan(ctx, "redis", "get", map[string]interface{}{"key": key})
	defer FinishSpan(span)

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Key does not exist
			return nil, false
		}
		c.log.Errorw("Redis GET error", "key", key, "error", err)
		SetSpanError(span, err)
		return nil, false
	}

	return value, true
}

// Set adds a value to the cache with the specified expiration
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	span := StartCacheSpan(ctx, "redis", "set", map[string]interface{}{"key": key})
	defer FinishSpan(span)

	if expiration == 0 {
		expiration = ExpiryDefaultRedis
	}

	// Redis stores strings; marshal everything else to JSON
	var strValue string
	switch v := value.(type) {
	case string:
		strValue = v
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			c.log.Errorw("Redis SET marshal error", "key", key, "error", err)
			SetSpanError(span, err)
			return
		}
		strValue = string(jsonBytes)
	}

	if err := c.client.Set(ctx, key, strValue, expiration).Err(); err != nil {
		c.log.Errorw("Redis SET error", "key", key, "error", err)
		SetSpanError(span, err)
	}
}

// Delete removes a value from the cache
func (c *RedisCache) Delete(ctx context.Context, key string) {
	span := StartCacheSpan(ctx, "redis", "delete", map[string]interface{}{"key": key})
	defer FinishSpan(span)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Errorw("Redis DEL error", "key", key, "error", err)
		SetSpanError(span, err)
	}
}

// DeleteByPrefix removes all values whose key starts with prefix
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	span := StartCacheSpan(ctx, "redis", "delete_by_prefix", map[string]interface{}{"prefix": prefix})
	defer FinishSpan(span)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, prefix+"*", ScanCount).Result()
		if err != nil {
			c.log.Errorw("Redis SCAN error", "prefix", prefix, "error", err)
			SetSpanError(span, err)
			return
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Errorw("Redis DEL error", "prefix", prefix, "error", err)
				SetSpanError(span, err)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
}
