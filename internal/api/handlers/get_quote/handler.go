package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProposalService/internal/api/handlers"
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
)

const (
	msgInvalidDraftType  = "некорректный тип черновика"
	msgInvalidQueryID    = "некорректный ID запроса"
	msgInvalidTravellers = "некорректное количество путешественников"
)

const (
	defaultAdults   = 1
	defaultChildren = 0
)

type Handler struct {
	useCase LoadDraftUseCase
	logger  Logger
}

func NewHandler(useCase LoadDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/queries/{queryId}/drafts/{draftType}/quote?adults=2&children=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Извлекаем параметры из URL
	vars := mux.Vars(r)
	queryID := vars["queryId"]
	draftType := domain.DraftType(vars["draftType"])

	if queryID == "" {
		h.logger.Warn("GET /queries/{id}/drafts/{type}/quote - Missing query ID")
		handlers.RespondBadRequest(w, msgInvalidQueryID)
		return
	}
	if !draftType.IsValid() {
		h.logger.Warn("GET /queries/{id}/drafts/{type}/quote - Invalid draft type: %s", draftType)
		handlers.RespondBadRequest(w, msgInvalidDraftType)
		return
	}

	// 2. Разбираем состав путешественников из query-параметров
	adults, err := travellerParam(r, "adults", defaultAdults)
	if err != nil {
		h.logger.Warn("GET /queries/{id}/drafts/{type}/quote - Invalid adults param: query_id=%s, error=%v", queryID, err)
		handlers.RespondBadRequest(w, msgInvalidTravellers)
		return
	}
	children, err := travellerParam(r, "children", defaultChildren)
	if err != nil {
		h.logger.Warn("GET /queries/{id}/drafts/{type}/quote - Invalid children param: query_id=%s, error=%v", queryID, err)
		handlers.RespondBadRequest(w, msgInvalidTravellers)
		return
	}

	// 3. Загружаем актуальную запись черновика
	resp, err := h.useCase.Execute(r.Context(), queryID, draftType)
	if err != nil {
		if errors.Is(err, load_draft.ErrInvalidInput) {
			h.logger.Warn("GET /queries/{id}/drafts/{type}/quote - Invalid input: query_id=%s, error=%v", queryID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryID)
			return
		}
		h.logger.Error("GET /queries/{id}/drafts/{type}/quote - Failed to load draft: query_id=%s, error=%v",
			queryID, err)
		handlers.RespondInternalError(w)
		return
	}

	// 4. Считаем стоимость по актуальной версии записи
	quote := domain.ComputeQuote(resp.Record, adults, children)

	h.logger.Info("GET /queries/{id}/drafts/{type}/quote - Quote computed: query_id=%s, mode=%s, total=%.2f",
		queryID, quote.Mode, quote.Total)
	handlers.RespondJSON(w, http.StatusOK, quote)
}

func travellerParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, errors.New("must not be negative")
	}
	return value, nil
}
