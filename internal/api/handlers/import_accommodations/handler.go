package import_accommodations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProposalService/internal/api/handlers"
	"github.com/m04kA/SMC-ProposalService/internal/api/middleware"
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	importUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
)

const (
	msgInvalidDraftType = "некорректный тип черновика"
	msgInvalidQueryID   = "некорректный ID запроса"
	msgUnauthorized     = "пользователь не авторизован"
)

type Handler struct {
	useCase ImportUseCase
	logger  Logger
}

func NewHandler(useCase ImportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/queries/{queryId}/drafts/{draftType}/import-accommodations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Извлекаем ID пользователя из контекста
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /queries/{id}/drafts/{type}/import-accommodations - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// 2. Извлекаем параметры из URL
	vars := mux.Vars(r)
	queryID := vars["queryId"]
	draftType := domain.DraftType(vars["draftType"])

	if queryID == "" {
		h.logger.Warn("POST /queries/{id}/drafts/{type}/import-accommodations - Missing query ID: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgInvalidQueryID)
		return
	}
	if !draftType.IsValid() {
		h.logger.Warn("POST /queries/{id}/drafts/{type}/import-accommodations - Invalid draft type: %s, user_id=%d",
			draftType, userID)
		handlers.RespondBadRequest(w, msgInvalidDraftType)
		return
	}

	// 3. Сканируем legacy-ключи и переносим размещения в черновик
	result, err := h.useCase.Execute(r.Context(), queryID, draftType)
	if err != nil {
		if errors.Is(err, importUC.ErrInvalidInput) {
			h.logger.Warn("POST /queries/{id}/drafts/{type}/import-accommodations - Invalid input: query_id=%s, user_id=%d, error=%v",
				queryID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryID)
			return
		}
		h.logger.Error("POST /queries/{id}/drafts/{type}/import-accommodations - Import failed: query_id=%s, user_id=%d, error=%v",
			queryID, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /queries/{id}/drafts/{type}/import-accommodations - Done: query_id=%s, matched_key=%s, imported=%d, user_id=%d",
		queryID, result.MatchedKey, result.Imported, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}
