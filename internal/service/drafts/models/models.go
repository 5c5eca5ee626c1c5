package models

import (
	"github.com/m04kA/SMC-ProposalService/internal/domain"
)

// Source источник, из которого координатор получил запись при загрузке
type Source string

const (
	// SourceRemote запись получена из удаленного хранилища
	SourceRemote Source = "remote"
	// SourceCache запись получена из офлайн-кэша
	SourceCache Source = "cache"
	// SourceDefault ни один из уровней не содержал записи,
	// возвращена пустая запись по умолчанию
	SourceDefault Source = "default"
)

// LoadResult результат загрузки черновика
type LoadResult struct {
	Record *domain.DraftRecord
	Source Source
}

// AccommodationSection секция размещений частичного обновления:
// выборки и наценка передаются вместе, как они хранятся в удаленной колонке
type AccommodationSection struct {
	Selections []domain.AccommodationSelection `json:"selections"`
	Markup     *domain.MarkupData              `json:"markup,omitempty"`
}

// SaveDraftRequest частичное обновление черновика.
// Nil-секции не затрагиваются слиянием.
type SaveDraftRequest struct {
	QueryID       string
	DraftType     domain.DraftType
	ItineraryDays *[]domain.ItineraryDay
	Accommodation *AccommodationSection
	Pricing       *domain.PricingConfig
	Email         *domain.EmailDraft
	Terms         *domain.TermsConditions
}

// ToDomainPatch конвертирует запрос в доменный patch
func (r *SaveDraftRequest) ToDomainPatch() domain.DraftPatch {
	patch := domain.DraftPatch{
		ItineraryDays: r.ItineraryDays,
		Pricing:       r.Pricing,
		Email:         r.Email,
		Terms:         r.Terms,
	}
	if r.Accommodation != nil {
		patch.Accommodation = &domain.AccommodationPatch{
			Selections: r.Accommodation.Selections,
			Markup:     r.Accommodation.Markup,
		}
	}
	return patch
}

// DraftResponse запись черновика с указанием источника загрузки
type DraftResponse struct {
	*domain.DraftRecord
	Source Source `json:"source,omitempty"`
}
