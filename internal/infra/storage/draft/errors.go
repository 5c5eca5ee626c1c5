package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда строка черновика не найдена
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrVersionConflict возвращается, когда patch несет версию ниже сохраненной.
	// Устаревший patch отбрасывается, а не применяется поверх новых данных.
	ErrVersionConflict = errors.New("draft.repository: stale version, patch dropped")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации секции черновика
	ErrEncode = errors.New("draft.repository: failed to encode draft section")

	// ErrDecode возвращается при ошибке десериализации колонки черновика
	ErrDecode = errors.New("draft.repository: failed to decode draft column")
)
