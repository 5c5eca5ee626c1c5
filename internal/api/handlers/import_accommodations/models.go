package import_accommodations

import (
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	importUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
)

// ImportResponse HTTP response model
type ImportResponse struct {
	// MatchedKey legacy-ключ, из которого восстановлены размещения.
	// Пустой, если подходящих данных не нашлось.
	MatchedKey string `json:"matchedKey,omitempty"`
	// Imported количество восстановленных выборок
	Imported int `json:"imported"`
	// AlreadyPresent true, если в черновике уже были размещения
	AlreadyPresent bool `json:"alreadyPresent"`
	// Record итоговая запись черновика после импорта
	Record *domain.DraftRecord `json:"record,omitempty"`
}

// FromUseCaseResult конвертирует результат use case в HTTP-модель
func FromUseCaseResult(result *importUC.Result) *ImportResponse {
	return &ImportResponse{
		MatchedKey:     result.MatchedKey,
		Imported:       result.Imported,
		AlreadyPresent: result.AlreadyPresent,
		Record:         result.Record,
	}
}
