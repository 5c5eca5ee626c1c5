package import_accommodations

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	importUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
)

// ImportUseCase интерфейс use case импорта размещений из legacy-данных
type ImportUseCase interface {
	Execute(ctx context.Context, queryID string, draftType domain.DraftType) (*importUC.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
