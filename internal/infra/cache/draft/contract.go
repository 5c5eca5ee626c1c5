package draft

import (
	"context"
	"time"
)

// KV интерфейс key-value хранилища офлайн-кэша.
// Реализуется redis-клиентом в production и map-фейком в тестах.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
