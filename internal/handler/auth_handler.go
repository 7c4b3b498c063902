package handler

import (
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles sign-in and profile requests. The bearer token never
// leaves the gateway.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

type sessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          *model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err, "Login failed", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, sessionResponse{Authenticated: true, User: user})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg model.Registration
	if err := decodeJSON(r, &reg); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), reg)
	if err != nil {
		writeError(w, r, err, "Registration failed", h.logger)
		return
	}

	writeData(w, r, http.StatusCreated, sessionResponse{Authenticated: true, User: user})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		writeError(w, r, err, "Logout failed", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, sessionResponse{})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.service.CurrentUser()
	writeData(w, r, http.StatusOK, sessionResponse{Authenticated: user != nil, User: user})
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update model.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err, "invalid request body", h.logger)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "Failed to update profile", h.logger)
		return
	}

	writeData(w, r, http.StatusOK, sessionResponse{Authenticated: true, User: user})
}
