package drafts

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	storage "github.com/m04kA/SMC-ProposalService/internal/infra/storage/draft"
)

// CacheAdapter интерфейс офлайн-кэша черновиков
type CacheAdapter interface {
	Write(ctx context.Context, record *domain.DraftRecord) error
	Read(ctx context.Context, queryID string, draftType domain.DraftType) (*domain.DraftRecord, error)
}

// DraftRepository интерфейс удаленного хранилища черновиков
type DraftRepository interface {
	GetByKey(ctx context.Context, queryID string, draftType domain.DraftType) (*domain.DraftRecord, error)
	Patch(ctx context.Context, queryID string, draftType domain.DraftType, patch *storage.Patch) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
