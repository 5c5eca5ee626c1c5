package save_draft

import (
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// AccommodationSection секция размещений в запросе на сохранение
type AccommodationSection struct {
	Selections []domain.AccommodationSelection `json:"selections"`
	Markup     *domain.MarkupData              `json:"markup,omitempty"`
}

// SaveDraftRequest HTTP request model. Каждая секция опциональна,
// отсутствующие секции не трогаются при слиянии.
type SaveDraftRequest struct {
	ItineraryDays *[]domain.ItineraryDay  `json:"itineraryDays,omitempty"`
	Accommodation *AccommodationSection   `json:"accommodation,omitempty"`
	Pricing       *domain.PricingConfig   `json:"pricingConfig,omitempty"`
	Email         *domain.EmailDraft      `json:"emailDraft,omitempty"`
	Terms         *domain.TermsConditions `json:"termsConditions,omitempty"`
}

// ToServiceRequest конвертирует HTTP-модель в запрос координатора
func (r *SaveDraftRequest) ToServiceRequest(queryID string, draftType domain.DraftType) *models.SaveDraftRequest {
	req := &models.SaveDraftRequest{
		QueryID:       queryID,
		DraftType:     draftType,
		ItineraryDays: r.ItineraryDays,
		Pricing:       r.Pricing,
		Email:         r.Email,
		Terms:         r.Terms,
	}
	if r.Accommodation != nil {
		req.Accommodation = &models.AccommodationSection{
			Selections: r.Accommodation.Selections,
			Markup:     r.Accommodation.Markup,
		}
	}
	return req
}
