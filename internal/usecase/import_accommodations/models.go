package import_accommodations

import "github.com/m04kA/SMC-ProposalService/internal/domain"

// Result результат попытки импорта размещений из legacy-данных
type Result struct {
	// MatchedKey legacy-ключ, давший данные; пустая строка, если ничего не найдено
	MatchedKey string `json:"matchedKey,omitempty"`
	// Imported количество импортированных выборок размещений
	Imported int `json:"imported"`
	// AlreadyPresent true, если размещения уже были и импорт не выполнялся
	AlreadyPresent bool `json:"alreadyPresent,omitempty"`
	// Record слитая запись после импорта (nil, если импорт не выполнялся)
	Record *domain.DraftRecord `json:"record,omitempty"`
}
