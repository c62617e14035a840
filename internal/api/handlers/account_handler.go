package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/isdelr/banco-api-be/internal/auth"
	"github.com/isdelr/banco-api-be/internal/services"
)

// AccountHandler handles HTTP requests for accounts and statements.
type AccountHandler struct {
	service services.AccountServiceProvider
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create opens an additional account for the authenticated user.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	account, err := h.service.OpenAccount(callerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to open account")
		http.Error(w, "Failed to open account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// List returns all accounts owned by the authenticated user.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	accounts, err := h.service.ListAccountsForUser(callerID)
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("Failed to list accounts")
		http.Error(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

// Statement returns every transaction across the target user's accounts,
// oldest first. Users may only read their own statement.
func (h *AccountHandler) Statement(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}
	userID := chi.URLParam(r, "userID")

	transactions, err := h.service.GetStatement(userID, callerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}
