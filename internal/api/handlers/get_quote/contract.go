package get_quote

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
)

// LoadDraftUseCase интерфейс use case загрузки черновика
type LoadDraftUseCase interface {
	Execute(ctx context.Context, queryID string, draftType domain.DraftType) (*load_draft.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
