package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/banco-api-be/internal/auth"
	"github.com/isdelr/banco-api-be/internal/services"
)

// UserHandler handles HTTP requests for registration and login.
type UserHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration. A first account is opened for the
// user as part of the same operation.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.service.RegisterUser(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			writeServiceError(w, err)
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles credential verification and token issuance. The body is
// form-encoded in the OAuth2 password-flow style: username and password fields.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.service.AuthenticateUser(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
			writeServiceError(w, err)
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to fetch user for login")
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
