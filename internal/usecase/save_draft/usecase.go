package save_draft

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// UseCase use case сохранения частичного обновления черновика.
//
// Запись материализуется неявно: save по неизвестному ключу создает
// новую запись (идемпотентный upsert), отдельной операции create нет.
type UseCase struct {
	drafts DraftService
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(drafts DraftService, logger Logger) *UseCase {
	return &UseCase{
		drafts: drafts,
		logger: logger,
	}
}

// Execute выполняет сохранение частичного обновления
func (uc *UseCase) Execute(ctx context.Context, req *models.SaveDraftRequest) (*domain.DraftRecord, error) {
	uc.logger.Info("SaveDraft: query=%s type=%s", req.QueryID, req.DraftType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Слияние и раздача по уровням хранения
	record, err := uc.drafts.Save(ctx, req)
	if err != nil {
		uc.logger.Error("SaveDraft: coordinator error: query=%s error=%v", req.QueryID, err)
		return nil, fmt.Errorf("%w: Execute - coordinator error: %v", ErrInternal, err)
	}

	uc.logger.Info("SaveDraft: saved: query=%s type=%s version=%d",
		req.QueryID, req.DraftType, record.Version)
	return record, nil
}
