package load_draft

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
	importUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
)

// DraftService интерфейс координатора черновиков
type DraftService interface {
	Load(ctx context.Context, queryID string, draftType domain.DraftType) (*models.LoadResult, error)
}

// AccommodationImporter интерфейс расширения импорта размещений
type AccommodationImporter interface {
	Execute(ctx context.Context, queryID string, draftType domain.DraftType) (*importUC.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
