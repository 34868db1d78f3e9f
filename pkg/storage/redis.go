package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisKV stores every document as a plain redis string without expiration.
type RedisKV struct {
	rdb Cmdable
}

func NewRedisKV(rdb Cmdable) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (kv *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := kv.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (kv *RedisKV) Set(ctx context.Context, key, value string) error {
	return kv.rdb.Set(ctx, key, value, 0).Err()
}

func (kv *RedisKV) Remove(ctx context.Context, key string) error {
	return kv.rdb.Del(ctx, key).Err()
}
