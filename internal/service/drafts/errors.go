package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда ни один уровень хранения не содержал записи
	ErrDraftNotFound = errors.New("drafts: draft not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("drafts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
