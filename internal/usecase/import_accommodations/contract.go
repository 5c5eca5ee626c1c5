package import_accommodations

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// CacheReader интерфейс сырого чтения ключей офлайн-кэша
type CacheReader interface {
	ReadRaw(ctx context.Context, key string) (string, error)
}

// DraftService интерфейс координатора черновиков
type DraftService interface {
	Load(ctx context.Context, queryID string, draftType domain.DraftType) (*models.LoadResult, error)
	Save(ctx context.Context, req *models.SaveDraftRequest) (*domain.DraftRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
