package save_draft

import (
	"context"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// DraftService интерфейс координатора черновиков
type DraftService interface {
	Save(ctx context.Context, req *models.SaveDraftRequest) (*domain.DraftRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
