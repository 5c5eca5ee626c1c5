package draft

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
)

// AccommodationColumn форма jsonb-колонки accommodation:
// выборки и наценка хранятся одним вложенным объектом
type AccommodationColumn struct {
	Selections []domain.AccommodationSelection `json:"selections"`
	Markup     *domain.MarkupData              `json:"markup"`
}

// termsText форма текстовой колонки terms: три свободнотекстовых поля
// условий сериализуются одной строкой (списки включений/исключений
// лежат в отдельных колонках)
type termsText struct {
	PaymentTerms       string `json:"paymentTerms"`
	CancellationPolicy string `json:"cancellationPolicy"`
	Notes              string `json:"notes"`
}

// EncodeTermsText сериализует свободнотекстовые поля условий в строку колонки terms
func EncodeTermsText(t domain.TermsConditions) (string, error) {
	data, err := json.Marshal(termsText{
		PaymentTerms:       t.PaymentTerms,
		CancellationPolicy: t.CancellationPolicy,
		Notes:              t.Notes,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Patch частичное обновление строки черновика.
// Nil-поля не включаются в запрос; версия передается всегда.
type Patch struct {
	ItineraryDays *[]domain.ItineraryDay
	Accommodation *AccommodationColumn
	Pricing       *domain.PricingConfig
	Email         *domain.EmailDraft
	Terms         *string
	Inclusions    *[]string
	Exclusions    *[]string
	Version       int64
	LastSaved     time.Time
}

// IsEmpty возвращает true, если patch не несет ни одной секции
func (p *Patch) IsEmpty() bool {
	return p.ItineraryDays == nil &&
		p.Accommodation == nil &&
		p.Pricing == nil &&
		p.Email == nil &&
		p.Terms == nil &&
		p.Inclusions == nil &&
		p.Exclusions == nil
}
