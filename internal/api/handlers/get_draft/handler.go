package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProposalService/internal/api/handlers"
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
)

const (
	msgInvalidDraftType = "некорректный тип черновика"
	msgInvalidQueryID   = "некорректный ID запроса"
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

// Handle GET /api/v1/queries/{queryId}/drafts/{draftType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем параметры из URL
	vars := mux.Vars(r)
	queryID := vars["queryId"]
	draftType := domain.DraftType(vars["draftType"])

	if queryID == "" {
		h.logger.Warn("GET /queries/{id}/drafts/{type} - Missing query ID")
		handlers.RespondBadRequest(w, msgInvalidQueryID)
		return
	}
	if !draftType.IsValid() {
		h.logger.Warn("GET /queries/{id}/drafts/{type} - Invalid draft type: %s", draftType)
		handlers.RespondBadRequest(w, msgInvalidDraftType)
		return
	}

	// Загрузка всегда дает запись: согласование уровней или пустые значения
	resp, err := h.useCase.Execute(r.Context(), queryID, draftType)
	if err != nil {
		if errors.Is(err, load_draft.ErrInvalidInput) {
			h.logger.Warn("GET /queries/{id}/drafts/{type} - Invalid input: query_id=%s, error=%v", queryID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryID)
			return
		}
		h.logger.Error("GET /queries/{id}/drafts/{type} - Failed to load draft: query_id=%s, error=%v",
			queryID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /queries/{id}/drafts/{type} - Draft loaded: query_id=%s, type=%s, source=%s, version=%d",
		queryID, draftType, resp.Source, resp.Record.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
