package save_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ProposalService/internal/api/handlers"
	"github.com/m04kA/SMC-ProposalService/internal/api/middleware"
	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/save_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDraftType   = "некорректный тип черновика"
	msgInvalidQueryID     = "некорректный ID запроса"
	msgUnauthorized       = "пользователь не авторизован"
)

type Handler struct {
	useCase SaveDraftUseCase
	logger  Logger
}

func NewHandler(useCase SaveDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/queries/{queryId}/drafts/{draftType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// 1. Извлекаем ID пользователя из контекста
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /queries/{id}/drafts/{type} - Unauthorized request")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// 2. Извлекаем параметры из URL
	vars := mux.Vars(r)
	queryID := vars["queryId"]
	draftType := domain.DraftType(vars["draftType"])

	if queryID == "" {
		h.logger.Warn("PUT /queries/{id}/drafts/{type} - Missing query ID: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgInvalidQueryID)
		return
	}
	if !draftType.IsValid() {
		h.logger.Warn("PUT /queries/{id}/drafts/{type} - Invalid draft type: %s, user_id=%d", draftType, userID)
		handlers.RespondBadRequest(w, msgInvalidDraftType)
		return
	}

	// 3. Декодируем тело запроса
	var req SaveDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /queries/{id}/drafts/{type} - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// 4. Слияние с текущей версией и сохранение
	record, err := h.useCase.Execute(r.Context(), req.ToServiceRequest(queryID, draftType))
	if err != nil {
		switch {
		case errors.Is(err, save_draft.ErrInvalidInput):
			h.logger.Warn("PUT /queries/{id}/drafts/{type} - Validation failed: query_id=%s, user_id=%d, error=%v",
				queryID, userID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /queries/{id}/drafts/{type} - Failed to save draft: query_id=%s, user_id=%d, error=%v",
				queryID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /queries/{id}/drafts/{type} - Draft saved: query_id=%s, type=%s, version=%d, user_id=%d",
		queryID, draftType, record.Version, userID)
	handlers.RespondJSON(w, http.StatusOK, record)
}
