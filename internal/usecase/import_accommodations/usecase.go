package import_accommodations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// UseCase восстановление выборок размещений из legacy-представления маршрута.
//
// Разовая миграция по требованию: когда ни один уровень хранения не содержит
// размещений, сканируется фиксированный список legacy-ключей кэша. Первый
// ключ, давший хотя бы одну выборку, побеждает; совпавший ключ логируется,
// чтобы восстановление можно было отследить по журналу.
type UseCase struct {
	cache  CacheReader
	drafts DraftService
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cache CacheReader, drafts DraftService, logger Logger) *UseCase {
	return &UseCase{
		cache:  cache,
		drafts: drafts,
		logger: logger,
	}
}

// Execute выполняет импорт размещений для указанного черновика.
//
// Ошибка разбора отдельного ключа-кандидата логируется, скан продолжается.
// Полное отсутствие данных трактуется как тихий no-op, не ошибка.
func (uc *UseCase) Execute(ctx context.Context, queryID string, draftType domain.DraftType) (*Result, error) {
	if queryID == "" || !draftType.IsValid() {
		return nil, fmt.Errorf("%w: queryId and a valid draftType are required", ErrInvalidInput)
	}

	uc.logger.Info("ImportAccommodations: query=%s type=%s", queryID, draftType)

	// 1. Текущее состояние: импорт только когда размещений нет нигде
	loaded, err := uc.drafts.Load(ctx, queryID, draftType)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}
	if loaded.Record.HasAccommodations() {
		uc.logger.Info("ImportAccommodations: accommodations already present (source=%s), skipping import: query=%s",
			loaded.Source, queryID)
		return &Result{AlreadyPresent: true}, nil
	}

	// 2. Скан legacy-ключей в фиксированном порядке
	for _, pattern := range domain.LegacyItineraryKeyPatterns {
		key := fmt.Sprintf(pattern, queryID)

		raw, err := uc.cache.ReadRaw(ctx, key)
		if err != nil {
			continue
		}

		var legacy legacyItinerary
		if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
			uc.logger.Warn("ImportAccommodations: unparseable legacy data under %s, trying next candidate: %v",
				key, err)
			continue
		}

		days := legacy.dayList()
		if len(days) == 0 {
			continue
		}

		selections := extractSelections(days)
		if len(selections) == 0 {
			continue
		}

		// 3. Принимаем извлеченные выборки и раздаем по уровням хранения
		record, err := uc.drafts.Save(ctx, &models.SaveDraftRequest{
			QueryID:   queryID,
			DraftType: draftType,
			Accommodation: &models.AccommodationSection{
				Selections: selections,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to persist imported accommodations: %v", ErrInternal, err)
		}

		uc.logger.Info("ImportAccommodations: recovered %d selections from legacy key %s: query=%s",
			len(selections), key, queryID)
		return &Result{
			MatchedKey: key,
			Imported:   len(selections),
			Record:     record,
		}, nil
	}

	// 4. Ни один кандидат не дал данных
	uc.logger.Info("ImportAccommodations: no legacy data found: query=%s", queryID)
	return &Result{}, nil
}
