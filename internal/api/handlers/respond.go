// Package handlers общие помощники HTTP ответов.
// Все ошибки API отдаются в едином конверте с устойчивым кодом:
//
//	{"error": {"code": "slot_conflict", "message": "...", ...}}
//
// Код предназначен для программной обработки, message — для человека.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Устойчивые коды ошибок API
const (
	CodeInvalidRequest  = "invalid_request"
	CodeRoomNotFound    = "room_not_found"
	CodeBookingNotFound = "booking_not_found"
	CodeSlotConflict    = "slot_conflict"
	CodeSlotInPast      = "slot_in_past"
	CodeInvalidDate     = "invalid_date"
	CodeOffGrid         = "off_grid"
	CodeAlreadyPast     = "already_past"
	CodeUnauthorized    = "unauthorized"
	CodeRateLimited     = "rate_limited"
	CodeInternalError   = "internal_error"
)

// ConflictEntry описывает занятый слот и того, кто его держит
type ConflictEntry struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Time      string `json:"time"`
}

// ErrorBody тело ошибки API
type ErrorBody struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	Conflicts []ConflictEntry `json:"conflicts,omitempty"`
	// Suggestion следующий свободный слот после первого конфликта
	Suggestion *string `json:"suggestion,omitempty"`
}

// ErrorResponse конверт ошибки API
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DecodeJSON разбирает тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	// Второй документ в теле считается ошибкой клиента
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON document")
	}
	return nil
}

// RespondJSON пишет успешный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку API с устойчивым кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondBadRequest пишет ошибку 400
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound пишет ошибку 404
func RespondNotFound(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusNotFound, code, message)
}

// RespondUnauthorized пишет ошибку 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondInternalError пишет ошибку 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, "error interno del servidor")
}

// RespondUnprocessable пишет ошибку 422 для запросов, отклонённых
// бизнес-правилами (прошедшие даты, слоты вне сетки)
func RespondUnprocessable(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusUnprocessableEntity, code, message)
}

// RespondConflict пишет ошибку 409 с конфликтующими слотами и
// подсказкой следующего свободного слота
func RespondConflict(w http.ResponseWriter, message string, conflicts []ConflictEntry, suggestion *string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: ErrorBody{
		Code:       CodeSlotConflict,
		Message:    message,
		Conflicts:  conflicts,
		Suggestion: suggestion,
	}})
}
