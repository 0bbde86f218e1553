package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tdinh-lab/stock-advisor/internal/apperrors"
	"github.com/tdinh-lab/stock-advisor/internal/services"
)

type AuthHandler struct {
	users services.UserService
}

func NewAuthHandler(users services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// HandleLogin handles POST /api/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid JSON body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, apperrors.Validation("Username and password are required"))
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// HandleRegister handles POST /api/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid JSON body"))
		return
	}

	if req.Username == "" || req.Password == "" || req.Name == "" || req.Email == "" {
		writeError(w, apperrors.Validation("All fields are required"))
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}
