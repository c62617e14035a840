package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/isdelr/banco-api-be/internal/auth"
	"github.com/isdelr/banco-api-be/internal/services"
)

// TransactionHandler handles HTTP requests for posting transactions.
type TransactionHandler struct {
	service services.TransactionServiceProvider
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service services.TransactionServiceProvider) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// TransactionPayload defines the structure for posting requests.
type TransactionPayload struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
}

// Create posts a deposit or withdrawal against an account owned by the
// authenticated user.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	txn, err := h.service.PostTransaction(payload.AccountID, payload.Amount, payload.Type, callerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, txn)
}
