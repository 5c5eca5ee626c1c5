package get_draft

import (
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
)

// GetDraftResponse HTTP response model
type GetDraftResponse struct {
	*domain.DraftRecord
	// Source уровень хранения, давший запись: remote, cache или default
	Source string `json:"source"`
	// ImportedAccommodations количество выборок, восстановленных
	// импортом из legacy-данных при этой загрузке
	ImportedAccommodations int `json:"importedAccommodations,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *load_draft.Response) *GetDraftResponse {
	return &GetDraftResponse{
		DraftRecord:            resp.Record,
		Source:                 string(resp.Source),
		ImportedAccommodations: resp.Imported,
	}
}
