package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devmatch/devmatch-backend/internal/config"
)

// DefaultTTL is applied to counter keys; refreshed on every read or write
// so active users keep their counters warm.
const DefaultTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes the Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

// KeyForMatchCount generates the Redis key for a user's match count.
func (c *RedisCache) KeyForMatchCount(userID uint64) string {
	return fmt.Sprintf("matches:count:%d", userID)
}

// UpdateMatchCount overwrites a user's cached match count and refreshes TTL.
func (c *RedisCache) UpdateMatchCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForMatchCount(userID), count, DefaultTTL).Err()
}

// GetMatchCount reads a user's cached match count. A cache miss returns
// (0, false, nil) so callers can fall back to the store.
func (c *RedisCache) GetMatchCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForMatchCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, DefaultTTL).Err()
	return n, true, nil
}

// IncrMatchCount bumps a user's cached match count and refreshes TTL.
// Used when a new match is recorded; the DB remains the source of truth.
func (c *RedisCache) IncrMatchCount(ctx context.Context, userID uint64) error {
	key := c.KeyForMatchCount(userID)
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, DefaultTTL).Err()
}
