package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the subject list blob under a single fixed Redis key.
type RedisBackend struct {
	rdb *redis.Client
	key string
}

// NewRedisBackend creates a RedisBackend bound to one key.
func NewRedisBackend(rdb *redis.Client, key string) *RedisBackend {
	return &RedisBackend{rdb: rdb, key: key}
}

func (b *RedisBackend) Get(ctx context.Context) (string, bool, error) {
	val, err := b.rdb.Get(ctx, b.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, value string) error {
	// No TTL: the list lives until explicitly overwritten.
	return b.rdb.Set(ctx, b.key, value, 0).Err()
}
