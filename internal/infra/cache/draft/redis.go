package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV реализация KV поверх redis-клиента
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV создает KV-хранилище поверх redis-клиента
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get возвращает значение ключа; отсутствие ключа маппится в ErrKeyNotFound
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("draft.cache: redis get %s: %w", key, err)
	}
	return value, nil
}

// Set записывает значение ключа с указанным TTL (0 = без истечения)
func (r *RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("draft.cache: redis set %s: %w", key, err)
	}
	return nil
}
