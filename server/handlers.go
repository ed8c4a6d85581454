package server

import (
	"encoding/json"
	"net/http"

	"github.com/JoseTorresAguirre/back-game/config"
	"github.com/JoseTorresAguirre/back-game/repository"
	"github.com/JoseTorresAguirre/back-game/session"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session_token"

// APIHandler handles all API requests.
type APIHandler struct {
	userRepo repository.UserRepository
	nickRepo repository.NickRepository
	sessions session.Store
	cfg      *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	userRepo repository.UserRepository,
	nickRepo repository.NickRepository,
	sessions session.Store,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		userRepo: userRepo,
		nickRepo: nickRepo,
		sessions: sessions,
		cfg:      cfg,
	}
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorBody is the {"error": ...} envelope used by register and nick failures.
type errorBody struct {
	Error string `json:"error"`
}

// messageBody is the {"message": ...} envelope used everywhere else.
type messageBody struct {
	Message string `json:"message"`
}
