package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	storage "github.com/m04kA/SMC-ProposalService/internal/infra/storage/draft"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
	"github.com/m04kA/SMC-ProposalService/pkg/ptr"
)

// Service координатор согласования черновиков между тремя уровнями
// хранения: память процесса, офлайн-кэш и удаленное хранилище.
//
// Политика слияния: удаленное хранилище предпочтительнее кэша, кэш
// предпочтительнее пустых значений по умолчанию. Две сессии, редактирующие
// один ключ, перезаписывают друг друга (last write wins); версия
// передается как подсказка, а не как блокировка; единственная защита на
// уровне хранилища в том, что устаревший patch не понижает сохраненную версию.
type Service struct {
	store     *Store
	cache     CacheAdapter
	remote    DraftRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает координатор черновиков
func NewService(
	cache CacheAdapter,
	remote DraftRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		store:     NewStore(),
		cache:     cache,
		remote:    remote,
		txManager: txManager,
		logger:    logger,
	}
}

// Load загружает черновик, согласуя уровни хранения.
//
// 1. Удаленное хранилище: найденная запись принимается и best-effort
// зеркалируется в кэш.
// 2. Офлайн-кэш: цепочка fallback-ключей, запись принимается при
// совпадении queryId.
// 3. Пустая запись по умолчанию (source = default): вызывающая сторона
// может запустить импорт размещений из legacy-данных.
//
// Любая ошибка чтения уровня трактуется как его отсутствие: слой
// смещен в сторону доступности, ошибки не доходят до пользователя.
func (s *Service) Load(ctx context.Context, queryID string, draftType domain.DraftType) (*models.LoadResult, error) {
	if queryID == "" || !draftType.IsValid() {
		return nil, fmt.Errorf("%w: queryId and a valid draftType are required", ErrInvalidInput)
	}

	key := domain.DraftKey{QueryID: queryID, DraftType: draftType}

	// 1. Удаленное хранилище, источник истины
	record, err := s.remote.GetByKey(ctx, queryID, draftType)
	if err == nil {
		if !s.store.Adopt(record) {
			s.logger.Warn("Load: stale remote read for query=%s type=%s (version=%d), keeping resident copy",
				queryID, draftType, record.Version)
		}
		// Зеркалируем принятую копию, а не сырое удаленное чтение:
		// устаревшая строка не должна затирать более свежий кэш
		adopted, _ := s.store.Get(key)
		if werr := s.cache.Write(ctx, adopted); werr != nil {
			s.logger.Warn("Load: failed to mirror remote draft to cache: %v", werr)
		}
		s.logger.Info("Load: draft loaded from remote: query=%s type=%s version=%d",
			queryID, draftType, adopted.Version)
		return &models.LoadResult{Record: adopted, Source: models.SourceRemote}, nil
	}
	if !errors.Is(err, storage.ErrDraftNotFound) {
		// Ошибка сети/хранилища приравнивается к отсутствию строки
		s.logger.Warn("Load: remote read failed, falling back to cache: query=%s type=%s error=%v",
			queryID, draftType, err)
	}

	// 2. Офлайн-кэш
	cached, cerr := s.cache.Read(ctx, queryID, draftType)
	if cerr == nil {
		if !s.store.Adopt(cached) {
			s.logger.Warn("Load: stale cache read for query=%s type=%s (version=%d), keeping resident copy",
				queryID, draftType, cached.Version)
		}
		adopted, _ := s.store.Get(key)
		s.logger.Info("Load: draft loaded from offline cache: query=%s type=%s version=%d",
			queryID, draftType, adopted.Version)
		return &models.LoadResult{Record: adopted, Source: models.SourceCache}, nil
	}

	// 3. Оба уровня пусты, остается пустая запись по умолчанию
	s.store.Adopt(domain.NewDraftRecord(queryID, draftType))
	adopted, _ := s.store.Get(key)
	s.logger.Info("Load: draft not found in any tier, using empty defaults: query=%s type=%s",
		queryID, draftType)
	return &models.LoadResult{Record: adopted, Source: models.SourceDefault}, nil
}

// Save сливает частичное обновление поверх резидентной копии и
// раздает результат по уровням хранения.
//
// Слияние в памяти синхронно и консистентно; версия увеличивается ровно
// на единицу за вызов без дедупликации повторов. Кэш пишется только при
// изменении содержимого (структурное сравнение без учета version и
// lastSaved). Удаленный patch несет только переданные секции плюс новую
// версию; его ошибки логируются и не откатывают уже примененное слияние.
func (s *Service) Save(ctx context.Context, req *models.SaveDraftRequest) (*domain.DraftRecord, error) {
	if req.QueryID == "" || !req.DraftType.IsValid() {
		return nil, fmt.Errorf("%w: queryId and a valid draftType are required", ErrInvalidInput)
	}

	key := domain.DraftKey{QueryID: req.QueryID, DraftType: req.DraftType}
	patch := req.ToDomainPatch()

	// 1. Слияние в памяти
	merged, changed := s.store.Apply(key, patch)

	// 2. Офлайн-кэш, только при изменении содержимого
	if changed {
		if err := s.cache.Write(ctx, merged); err != nil {
			s.logger.Warn("Save: cache write failed (ignored): query=%s type=%s error=%v",
				req.QueryID, req.DraftType, err)
		}
	}

	// 3. Удаленный patch из переданных секций
	if !patch.IsEmpty() {
		storagePatch, err := buildStoragePatch(patch, merged)
		if err != nil {
			s.logger.Warn("Save: failed to build remote patch (skipped): query=%s type=%s error=%v",
				req.QueryID, req.DraftType, err)
			return merged, nil
		}

		err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			return s.remote.Patch(txCtx, req.QueryID, req.DraftType, storagePatch)
		})
		switch {
		case errors.Is(err, storage.ErrVersionConflict):
			s.logger.Warn("Save: remote rejected stale patch: query=%s type=%s version=%d",
				req.QueryID, req.DraftType, merged.Version)
		case err != nil:
			s.logger.Warn("Save: remote patch failed (draft kept locally): query=%s type=%s error=%v",
				req.QueryID, req.DraftType, err)
		}
	}

	s.logger.Info("Save: draft saved: query=%s type=%s version=%d changed=%t",
		req.QueryID, req.DraftType, merged.Version, changed)
	return merged, nil
}

// buildStoragePatch собирает удаленный patch из секций, присутствующих
// в частичном обновлении. Данные берутся из слитой записи (канонические,
// с пересчитанными итогами). Секция условий раскладывается в три колонки:
// строка terms, списки inclusions и exclusions.
func buildStoragePatch(patch domain.DraftPatch, merged *domain.DraftRecord) (*storage.Patch, error) {
	result := &storage.Patch{
		Version:   merged.Version,
		LastSaved: merged.LastSaved,
	}

	if patch.ItineraryDays != nil {
		result.ItineraryDays = ptr.Ptr(merged.ItineraryDays)
	}
	if patch.Accommodation != nil {
		result.Accommodation = &storage.AccommodationColumn{
			Selections: merged.AccommodationSelections,
			Markup:     merged.MarkupData,
		}
	}
	if patch.Pricing != nil {
		result.Pricing = ptr.Ptr(merged.PricingConfig)
	}
	if patch.Email != nil {
		result.Email = ptr.Ptr(merged.EmailDraft)
	}
	if patch.Terms != nil {
		text, err := storage.EncodeTermsText(merged.TermsConditions)
		if err != nil {
			return nil, fmt.Errorf("%w: encode terms: %v", ErrInternal, err)
		}
		result.Terms = ptr.Ptr(text)
		result.Inclusions = ptr.Ptr(merged.TermsConditions.Inclusions)
		result.Exclusions = ptr.Ptr(merged.TermsConditions.Exclusions)
	}

	return result, nil
}
