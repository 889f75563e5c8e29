// Package cache stores the most recent forecast so a restart or an upstream
// outage can still serve real data for a while.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"hatake/internal/metrics"
	"hatake/internal/models"
)

// ErrCacheMiss is returned by Get when no usable entry exists.
var ErrCacheMiss = errors.New("cache miss")

type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "hatake"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the entry key for a location, rounded to the precision sent upstream.
func (c *RedisCache) Key(lat, long float64) string {
	return fmt.Sprintf("%s:forecast:%.4f:%.4f", c.prefix, lat, long)
}

func (c *RedisCache) Get(ctx context.Context, lat, long float64) (*models.Forecast, error) {
	data, err := c.client.Get(ctx, c.Key(lat, long)).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheOp("get", "miss")
		return nil, ErrCacheMiss
	}
	if err != nil {
		metrics.RecordCacheOp("get", "error")
		return nil, fmt.Errorf("failed to read cached forecast: %w", err)
	}

	var f models.Forecast
	if err := json.Unmarshal(data, &f); err != nil {
		metrics.RecordCacheOp("get", "error")
		return nil, fmt.Errorf("failed to decode cached forecast: %w", err)
	}

	metrics.RecordCacheOp("get", "hit")
	return &f, nil
}

func (c *RedisCache) Set(ctx context.Context, lat, long float64, f *models.Forecast) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode forecast: %w", err)
	}

	if err := c.client.Set(ctx, c.Key(lat, long), data, c.ttl).Err(); err != nil {
		metrics.RecordCacheOp("set", "error")
		return fmt.Errorf("failed to cache forecast: %w", err)
	}

	metrics.RecordCacheOp("set", "ok")
	return nil
}

// Ping checks connectivity to the Redis server.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// NopCache never stores anything. It is used when Redis is disabled.
type NopCache struct{}

func (NopCache) Get(context.Context, float64, float64) (*models.Forecast, error) {
	return nil, ErrCacheMiss
}

func (NopCache) Set(context.Context, float64, float64, *models.Forecast) error {
	return nil
}
