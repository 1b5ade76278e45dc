package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ssr-template/internal/ports"
)

// AuthHandler serves the account endpoints of the JSON API.
type AuthHandler struct {
	auth ports.AuthAPI
}

// NewAuthHandler creates a new AuthHandler backed by auth.
func NewAuthHandler(auth ports.AuthAPI) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.Register(r.Context(), req.Credentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToUserResponse(u, true))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.Login(r.Context(), req.Credentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u, true))
}

// Session handles GET /api/v1/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	u, err := h.auth.Session(r.Context(), token)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u, false))
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.auth.Logout(r.Context(), token); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
