package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse стандартное тело ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest отвечает 400 с сообщением об ошибке
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondUnauthorized отвечает 401 с сообщением об ошибке
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message})
}

// RespondForbidden отвечает 403 с сообщением об ошибке
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: message})
}

// RespondNotFound отвечает 404 с сообщением об ошибке
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondInternalError отвечает 500 со стандартным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
}

// DecodeJSON декодирует тело запроса в dst, запрещая неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}
