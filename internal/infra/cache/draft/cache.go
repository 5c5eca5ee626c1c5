package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
)

// Adapter офлайн-кэш черновиков поверх key-value хранилища.
// Локальное зеркало, не источник истины: записи best-effort,
// чтение с цепочкой legacy-ключей для обратной совместимости.
type Adapter struct {
	kv  KV
	ttl time.Duration
}

// NewAdapter создает адаптер офлайн-кэша.
// ttl = 0 означает записи без истечения.
func NewAdapter(kv KV, ttl time.Duration) *Adapter {
	return &Adapter{kv: kv, ttl: ttl}
}

// compositeKey ключ текущего формата (queryId + draftType)
func compositeKey(queryID string, draftType domain.DraftType) string {
	return fmt.Sprintf("%s:%s:%s", domain.CacheKeyPrefix, queryID, draftType)
}

// queryOnlyKey ключ текущего формата без draftType (для обратной совместимости чтения)
func queryOnlyKey(queryID string) string {
	return fmt.Sprintf("%s:%s", domain.CacheKeyPrefix, queryID)
}

// fallbackKeys возвращает упорядоченный список ключей для чтения:
// составной ключ, ключ только по queryId и два legacy-префикса
func fallbackKeys(queryID string, draftType domain.DraftType) []string {
	return []string{
		compositeKey(queryID, draftType),
		queryOnlyKey(queryID),
		fmt.Sprintf("%s:%s:%s", domain.LegacyCacheKeyPrefix, queryID, draftType),
		fmt.Sprintf("%s_%s", domain.LegacyCacheKeyPrefix, queryID),
	}
}

// Write сериализует запись и кладет ее под составной ключ и под ключ
// только по queryId. Ошибка возвращается для логирования, но кэш
// best-effort: вызывающая сторона не прерывает операцию.
func (a *Adapter) Write(ctx context.Context, record *domain.DraftRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: Write - marshal record: %v", ErrWrite, err)
	}

	value := string(data)

	if err := a.kv.Set(ctx, compositeKey(record.QueryID, record.DraftType), value, a.ttl); err != nil {
		return fmt.Errorf("%w: Write - composite key: %v", ErrWrite, err)
	}
	if err := a.kv.Set(ctx, queryOnlyKey(record.QueryID), value, a.ttl); err != nil {
		return fmt.Errorf("%w: Write - query-only key: %v", ErrWrite, err)
	}

	return nil
}

// Read ищет запись по цепочке ключей. Возвращается первая запись,
// чей встроенный queryId совпадает с запрошенным. Нечитаемый JSON
// и несовпадение идентификатора означают переход к следующему ключу.
func (a *Adapter) Read(ctx context.Context, queryID string, draftType domain.DraftType) (*domain.DraftRecord, error) {
	for _, key := range fallbackKeys(queryID, draftType) {
		value, err := a.kv.Get(ctx, key)
		if err != nil {
			continue
		}

		var record domain.DraftRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			continue
		}
		if record.QueryID != queryID {
			continue
		}

		return &record, nil
	}

	return nil, ErrDraftNotFound
}

// ReadRaw читает произвольный ключ без разбора.
// Используется сканом импорта размещений из legacy-маршрутов.
func (a *Adapter) ReadRaw(ctx context.Context, key string) (string, error) {
	return a.kv.Get(ctx, key)
}
