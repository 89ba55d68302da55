package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a ResultCache backed by a Redis instance.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed result cache.
func NewRedisCache(addr, password string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string, ttl time.Duration) error {
	return r.client.Set(context.Background(), key, value, ttl).Err()
}

// Close releases the underlying Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
