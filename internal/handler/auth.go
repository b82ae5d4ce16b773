package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// HandleLogin issues a token
// @Summary Obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/auth/token/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, OpLogin, err)
		return
	}
	respondJSON(w, http.StatusOK, LoginResponse{AuthToken: token})
}

// HandleLogout revokes the token used for this request
// @Summary Revoke the current token
// @Tags auth
// @Security TokenAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/token/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgNotAuthenticated)
		return
	}
	h.service.Logout(r.Context(), claims)
	w.WriteHeader(http.StatusNoContent)
}
