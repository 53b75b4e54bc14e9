// Package respond writes JSON bodies and maps domain error kinds to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/logging"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}

// Error writes err as {"error": ...}. Unclassified errors are logged and
// reported as a generic 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", "error", err)
		msg = "internal error"
	}

	JSON(w, r, status, errorBody{Error: msg})
}

// BadRequest writes a 400 with msg.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	JSON(w, r, http.StatusBadRequest, errorBody{Error: msg})
}

// Status returns the HTTP status for err's kind.
func Status(err error) int {
	switch {
	case errors.Is(err, month.ErrInvalidMonth),
		errors.Is(err, month.ErrInvalidRange),
		errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrMissingReference):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON request body into v, writing a 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, r, "invalid request body")
		return false
	}

	return true
}
