package load_draft

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// Response результат загрузки черновика
type Response struct {
	Record *domain.DraftRecord
	Source models.Source
	// Imported количество выборок размещений, восстановленных
	// импортом из legacy-данных при этой загрузке
	Imported int
}

// UseCase use case загрузки черновика при монтировании UI.
//
// Поверх загрузки координатора добавляет последний рубеж восстановления:
// если ни один уровень хранения не содержал записи, запускается импорт
// размещений из legacy-маршрутов. Сбой импорта не считается ошибкой
// загрузки: возвращается пустая запись по умолчанию.
type UseCase struct {
	drafts   DraftService
	importer AccommodationImporter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(drafts DraftService, importer AccommodationImporter, logger Logger) *UseCase {
	return &UseCase{
		drafts:   drafts,
		importer: importer,
		logger:   logger,
	}
}

// Execute выполняет загрузку черновика
func (uc *UseCase) Execute(ctx context.Context, queryID string, draftType domain.DraftType) (*Response, error) {
	if queryID == "" || !draftType.IsValid() {
		return nil, fmt.Errorf("%w: queryId and a valid draftType are required", ErrInvalidInput)
	}

	// 1. Загрузка через координатор (remote -> cache -> defaults)
	result, err := uc.drafts.Load(ctx, queryID, draftType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	response := &Response{
		Record: result.Record,
		Source: result.Source,
	}

	// 2. Оба уровня пусты, пробуем восстановить размещения из legacy-данных
	if result.Source == models.SourceDefault {
		imported, ierr := uc.importer.Execute(ctx, queryID, draftType)
		if ierr != nil {
			uc.logger.Warn("LoadDraft: legacy accommodation import failed (ignored): query=%s error=%v",
				queryID, ierr)
			return response, nil
		}
		if imported.Imported > 0 {
			response.Record = imported.Record
			response.Imported = imported.Imported
		}
	}

	return response, nil
}
