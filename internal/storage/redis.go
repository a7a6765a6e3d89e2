package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores every key as a plain Redis string.
type RedisKV struct {
	Redis *redis.Client
}

// NewRedisKV wraps an existing client. The caller owns the client lifecycle.
func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{Redis: rdb}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes the value with no expiry; each write fully replaces the key.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.Redis.Set(ctx, key, value, 0).Err()
}
