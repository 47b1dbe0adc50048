package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsTTL = 5 * time.Minute

// Cache is a read-through layer for expensive read aggregations such
// as the dashboard. It is an optimization only; Mongo stays the state
// of record and the service runs fine without Redis configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(uri string) (*Cache, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{rdb: rdb, ttl: statsTTL}, nil
}

func DashboardKey(userID string) string {
	return "dashboard:stats:" + userID
}

// GetJSON loads a cached value into v, reporting whether the key was
// present.
func (c *Cache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) > 0 {
		_ = c.rdb.Del(ctx, keys...).Err()
	}
}

func (c *Cache) Close() {
	_ = c.rdb.Close()
}
