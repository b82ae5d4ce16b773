package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/media"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

// RegisterResponse echoes the created account without the password
type RegisterResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SetPasswordRequest changes the caller's password
type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

// AvatarRequest carries a base64 data URL
type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

// AvatarResponse is the public URL of the stored avatar
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

type UserHandler struct {
	service user.Service
	present presenter
}

func NewUserHandler(service user.Service, images ImageURLer) *UserHandler {
	return &UserHandler{service: service, present: presenter{images: images}}
}

// HandleRegister creates an account
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/users [post]
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
		return
	}

	u, err := h.service.Register(r.Context(), domain.NewUser{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		respondServiceError(w, r, OpRegister, err)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
}

// HandleList returns a page of users
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} UserPageResponse
// @Router /api/users [get]
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), currentUserID(r), page)
	if err != nil {
		respondServiceError(w, r, OpListUsers, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.userPage(result))
}

// HandleGet returns one user profile
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}
	h.respondProfile(w, r, id)
}

// HandleMe returns the caller's profile
// @Summary Current user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/users/me [get]
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	h.respondProfile(w, r, currentUserID(r))
}

func (h *UserHandler) respondProfile(w http.ResponseWriter, r *http.Request, id int64) {
	profile, err := h.service.Get(r.Context(), currentUserID(r), id)
	if err != nil {
		respondServiceError(w, r, OpGetUser, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.user(*profile))
}

// HandleSetPassword changes the caller's password
// @Summary Change password
// @Tags users
// @Accept json
// @Security TokenAuth
// @Param request body SetPasswordRequest true "Passwords"
// @Success 204
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/users/set_password [post]
func (h *UserHandler) HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	var req SetPasswordRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetPassword); err != nil {
		return
	}

	if err := h.service.SetPassword(r.Context(), currentUserID(r), req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(w, r, OpSetPassword, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetAvatar stores a new avatar for the caller
// @Summary Upload avatar
// @Tags users
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body AvatarRequest true "Base64 data URL"
// @Success 200 {object} AvatarResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/users/me/avatar [put]
func (h *UserHandler) HandleSetAvatar(w http.ResponseWriter, r *http.Request) {
	var req AvatarRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetAvatar); err != nil {
		return
	}

	img, err := media.DecodeDataURL(req.Avatar)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			err = domain.NewValidationError("avatar", verr.Message)
		}
		respondServiceError(w, r, OpSetAvatar, err)
		return
	}

	u, err := h.service.SetAvatar(r.Context(), currentUserID(r), img)
	if err != nil {
		respondServiceError(w, r, OpSetAvatar, err)
		return
	}

	resp := AvatarResponse{}
	if u.Avatar != nil {
		resp.Avatar = h.present.imageURL(*u.Avatar)
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleDeleteAvatar removes the caller's avatar
// @Summary Remove avatar
// @Tags users
// @Security TokenAuth
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/users/me/avatar [delete]
func (h *UserHandler) HandleDeleteAvatar(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAvatar(r.Context(), currentUserID(r)); err != nil {
		respondServiceError(w, r, OpDeleteAvatar, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
