package draft

import "errors"

var (
	// ErrKeyNotFound возвращается KV-хранилищем, когда ключ отсутствует
	ErrKeyNotFound = errors.New("draft.cache: key not found")

	// ErrDraftNotFound возвращается, когда ни один ключ кэша не дал записи.
	// Нечитаемый JSON и несовпадение queryId приравниваются к отсутствию.
	ErrDraftNotFound = errors.New("draft.cache: draft not found")

	// ErrWrite возвращается при ошибке записи в кэш.
	// Кэш best-effort: вызывающая сторона логирует и продолжает работу.
	ErrWrite = errors.New("draft.cache: failed to write draft")
)
