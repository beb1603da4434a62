// Package cache provides a small JSON cache over Redis for responses from
// external collaborator services (rates, geocoding, weather). External
// failures degrade to defaults either way — the cache just keeps the app from
// hammering free public APIs.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelflow/tripflow/internal/observability"
)

// Cache is a thin JSON get/set wrapper around a Redis client.
type Cache struct{ c *redis.Client }

// New connects a Cache to the Redis instance at addr.
func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// NewFromClient wraps an existing client. Used by tests with miniredis.
func NewFromClient(c *redis.Client) *Cache {
	return &Cache{c: c}
}

// Get unmarshals the cached value for key into dst.
// Returns (false, nil) on a miss.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

// Set stores v under key for ttl.
func (r *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, ttl).Err()
}

// Del removes key.
func (r *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("redis", "del")
	return r.c.Del(ctx, key).Err()
}
