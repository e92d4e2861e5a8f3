package backend

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/optic-manager/internal/store"
)

// redisClient is the part of *redis.Client the backend uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisBackend struct {
	client redisClient
	prefix string
}

func NewRedisBackend(client redisClient, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores the value without expiry.
func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	return b.client.Set(ctx, b.prefix+key, value, 0).Err()
}

var _ store.Backend = (*RedisBackend)(nil)
