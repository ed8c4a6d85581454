package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JoseTorresAguirre/back-game/logger"
	"github.com/JoseTorresAguirre/back-game/repository"

	"github.com/gorilla/mux"
)

// SaveNickRequest represents the save-nick request body.
type SaveNickRequest struct {
	UserID int64  `json:"user_id"`
	Nick   string `json:"nick"`
}

// SaveNickHandler stores a new nick for an existing user.
func (h *APIHandler) SaveNickHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveNickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "user_id y nick son requeridos"})
		return
	}

	if req.UserID == 0 || req.Nick == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "user_id y nick son requeridos"})
		return
	}

	if _, err := h.nickRepo.CreateNick(req.UserID, req.Nick); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn("[SaveNick] unknown user", logger.Int64("userId", req.UserID))
			writeJSON(w, http.StatusNotFound, errorBody{Error: "Usuario no encontrado"})
			return
		}
		logger.Error("[SaveNick] failed to save nick",
			logger.Int64("userId", req.UserID),
			logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: fmt.Sprintf("Error al guardar el nick: %v", err)})
		return
	}

	logger.Info("[SaveNick] nick saved", logger.Int64("userId", req.UserID))
	writeJSON(w, http.StatusOK, messageBody{Message: "Nick guardado con éxito"})
}

// GetNickHandler returns the user's first saved nick, or null if there is
// none. Absence is a normal result, not an error.
func (h *APIHandler) GetNickHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["user_id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "user_id inválido"})
		return
	}

	nick, err := h.nickRepo.GetNickByUserID(userID)
	if err != nil {
		logger.Error("[GetNick] failed to query nick",
			logger.Int64("userId", userID),
			logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Error interno del servidor"})
		return
	}

	var value *string
	if nick != nil {
		value = &nick.Nick
	}
	writeJSON(w, http.StatusOK, struct {
		Nick *string `json:"nick"`
	}{Nick: value})
}
