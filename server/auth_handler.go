package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JoseTorresAguirre/back-game/core/auth"
	"github.com/JoseTorresAguirre/back-game/logger"
	"github.com/JoseTorresAguirre/back-game/model"
	"github.com/JoseTorresAguirre/back-game/repository"
)

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	Email        string `json:"email"`
	DNI          string `json:"dni"`
	Celular      string `json:"celular"`
	Pais         string `json:"pais"`
	Departamento string `json:"departamento"`
	Direccion    string `json:"direccion"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// nullable wraps an optional field so an absent value is stored as NULL
// rather than an empty string.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// RegisterHandler handles user registration. The initial password is the
// hash of the user's DNI; there is no change-password flow yet, so the DNI
// doubles as the provisioned credential.
func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Cuerpo de la solicitud inválido"})
		return
	}

	if req.Nombres == "" || req.Apellidos == "" || req.Email == "" || req.DNI == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "nombres, apellidos, email y dni son requeridos"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.DNI)
	if err != nil {
		logger.Error("[Register] failed to hash initial password", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Error al procesar la contraseña"})
		return
	}

	user := &model.User{
		Nombres:      req.Nombres,
		Apellidos:    req.Apellidos,
		Email:        req.Email,
		DNI:          req.DNI,
		Celular:      nullable(req.Celular),
		Pais:         nullable(req.Pais),
		Departamento: nullable(req.Departamento),
		Direccion:    nullable(req.Direccion),
		PasswordHash: hashedPassword,
	}

	userID, err := h.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			logger.Warn("[Register] email or dni already registered",
				logger.String("email", req.Email))
		} else {
			logger.Error("[Register] failed to create user", logger.ErrorField(err))
		}
		// The storage error text is part of the response contract.
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	logger.Info("[Register] user registered",
		logger.Int64("userId", userID),
		logger.String("email", req.Email))
	writeJSON(w, http.StatusCreated, messageBody{Message: "Usuario registrado exitosamente."})
}

// LoginHandler verifies credentials and starts a cookie-backed session.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "Cuerpo de la solicitud inválido"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, messageBody{Message: "email y password son requeridos"})
		return
	}

	user, err := h.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		logger.Error("[Login] failed to query user", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Error interno del servidor"})
		return
	}

	if user == nil {
		logger.Warn("[Login] unknown email", logger.String("email", req.Email))
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Usuario no encontrado"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("[Login] password mismatch", logger.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, messageBody{Message: "Credenciales incorrectas"})
		return
	}

	token, err := h.sessions.Start(r.Context(), user.ID, user.Email)
	if err != nil {
		logger.Error("[Login] failed to start session", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Error interno del servidor"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("[Login] login successful", logger.Int64("userId", user.ID))
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}{
		Message: "Login exitoso",
		UserID:  user.ID,
	})
}

// LogoutHandler clears the session. Always returns 200, with or without a
// prior session.
func (h *APIHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.Clear(r.Context(), cookie.Value); err != nil {
			logger.Error("[Logout] failed to clear session", logger.ErrorField(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, messageBody{Message: "Logout exitoso"})
}
