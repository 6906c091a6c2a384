package courses

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "course:exists:"

// Cache stores definitive existence answers.
type Cache interface {
	// Get returns the cached answer, or found=false on a miss.
	Get(ctx context.Context, courseID string) (exists bool, found bool, err error)
	Set(ctx context.Context, courseID string, exists bool, ttl time.Duration) error
}

// RedisCache keeps course existence answers in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, courseID string) (bool, bool, error) {
	val, err := c.client.Get(ctx, cacheKeyPrefix+courseID).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

func (c *RedisCache) Set(ctx context.Context, courseID string, exists bool, ttl time.Duration) error {
	val := "0"
	if exists {
		val = "1"
	}
	return c.client.Set(ctx, cacheKeyPrefix+courseID, val, ttl).Err()
}

// CachedChecker answers from the cache when it can and asks the wrapped
// Checker otherwise. Failed checks are never cached, and cache errors
// only cost a lookup.
type CachedChecker struct {
	next   Checker
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// Compile-time check: *CachedChecker satisfies the Checker interface.
var _ Checker = (*CachedChecker)(nil)

func NewCachedChecker(next Checker, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedChecker {
	return &CachedChecker{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedChecker) Exists(ctx context.Context, courseID string) (bool, error) {
	exists, found, err := c.cache.Get(ctx, courseID)
	if err != nil {
		c.logger.Warn("course cache read failed", "course_id", courseID, "error", err)
	} else if found {
		return exists, nil
	}

	exists, err = c.next.Exists(ctx, courseID)
	if err != nil {
		return false, err
	}

	if err := c.cache.Set(ctx, courseID, exists, c.ttl); err != nil {
		c.logger.Warn("course cache write failed", "course_id", courseID, "error", err)
	}
	return exists, nil
}
