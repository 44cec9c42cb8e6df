// Package cache is a thin Redis wrapper used for read-through caching of
// leaderboard queries. It is optional: the service runs without it when no
// Redis address is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

type Cache struct {
	client *redis.Client
	logger *slog.Logger
	sf     singleflight.Group
}

func New(ctx context.Context, addr string, logger *slog.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return &Cache{client: client, logger: logger}, nil
}

func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Invalidate drops a key, used after leaderboard writes.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

// FindAndCache implements read-through caching with singleflight so a cold
// or expired key triggers a single upstream fetch. Cache errors other than
// a miss are treated as a miss.
func FindAndCache[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn FetchFunc[T]) (T, error) {
	var zero T

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		return cached, nil
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.logger.Warn("cache get error, treating as miss", "key", key, "error", err)
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, value, ttl); err != nil {
			c.logger.Warn("cache set failed", "key", key, "error", err)
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		return zero, errors.New("cache: singleflight type mismatch for key " + key)
	}
	return value, nil
}
