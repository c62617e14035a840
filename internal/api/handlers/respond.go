package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/banco-api-be/internal/services"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps a domain error to its HTTP status code:
// 400 validation, 401 credentials, 403 ownership, 404 missing resource.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidTransactionType),
		errors.Is(err, services.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrNoAccountsFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
