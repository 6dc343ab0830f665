package service

import (
	"context"
	"encoding/json"
	"time"

	"bistro-api/internal/metrics"
	"bistro-api/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService provides cache-aside helpers over Redis. A nil *CacheService
// is valid and behaves as an always-miss cache, so the rest of the app does
// not need to care whether Redis is configured.
type CacheService struct {
	redis     *redis.Client
	collector *metrics.Collector
	logger    *zap.Logger
}

// NewCacheService creates a new cache service. collector may be nil, in which
// case hits and misses are not recorded.
func NewCacheService(redisClient *redis.Client, collector *metrics.Collector, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:     redisClient,
		collector: collector,
		logger:    logger,
	}
}

// GetJSON tries to read and unmarshal a cached value into dest, reporting a
// hit. Cache corruption and transport errors are logged and treated as a
// miss so callers always fall through to the store.
func (c *CacheService) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}

	cached, err := c.redis.Get(ctx, key)
	if err != nil {
		if err != goredis.Nil {
			c.logger.Warn("Cache read failed, falling back to store",
				zap.String("key", key),
				zap.Error(err))
		}
		c.recordMiss()
		return false
	}

	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		c.logger.Warn("Cache entry corrupted, falling back to store",
			zap.String("key", key),
			zap.Error(err))
		c.recordMiss()
		return false
	}

	c.recordHit()
	return true
}

func (c *CacheService) recordHit() {
	if c.collector != nil {
		c.collector.RecordCacheHit()
	}
}

func (c *CacheService) recordMiss() {
	if c.collector != nil {
		c.collector.RecordCacheMiss()
	}
}

// SetJSONAsync caches a value in the background (fire and forget)
func (c *CacheService) SetJSONAsync(key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Failed to marshal value for caching",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.redis.Set(ctx, key, string(data), ttl); err != nil {
			c.logger.Error("Failed to cache value",
				zap.String("key", key),
				zap.Error(err))
		}
	}()
}

// InvalidateStats drops the cached reports after a checkout writes a new
// payment record
func (c *CacheService) InvalidateStats() {
	c.invalidateAsync(redis.KeyAdminStats, redis.KeyOrderStats)
}

// InvalidateMenu drops the cached menu list after a catalog write
func (c *CacheService) InvalidateMenu() {
	c.invalidateAsync(redis.KeyMenuAll, redis.KeyOrderStats, redis.KeyAdminStats)
}

func (c *CacheService) invalidateAsync(keys ...string) {
	if c == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.redis.Delete(ctx, keys...); err != nil {
			c.logger.Error("Failed to invalidate cache keys",
				zap.Strings("keys", keys),
				zap.Error(err))
		}
	}()
}

// HealthCheck performs a health check on the cache system
func (c *CacheService) HealthCheck(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.redis.Health(ctx)
}
