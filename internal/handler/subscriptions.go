package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/subscription"
)

type SubscriptionHandler struct {
	service subscription.Service
	present presenter
}

func NewSubscriptionHandler(service subscription.Service, images ImageURLer) *SubscriptionHandler {
	return &SubscriptionHandler{service: service, present: presenter{images: images}}
}

// HandleList returns the authors the caller follows
// @Summary List subscriptions
// @Tags subscriptions
// @Produce json
// @Security TokenAuth
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Param recipes_limit query int false "Recipes per author"
// @Success 200 {object} AuthorFeedPageResponse
// @Router /api/users/subscriptions [get]
func (h *SubscriptionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	recipesLimit, ok := optionalIntParam(w, r, QueryRecipesLimit)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), currentUserID(r), recipesLimit, page)
	if err != nil {
		respondServiceError(w, r, OpListFollowed, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.authorFeedPage(result))
}

// HandleSubscribe follows an author
// @Summary Subscribe to an author
// @Tags subscriptions
// @Produce json
// @Security TokenAuth
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Recipes in the response"
// @Success 201 {object} AuthorFeedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id}/subscribe [post]
func (h *SubscriptionHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}
	recipesLimit, ok := optionalIntParam(w, r, QueryRecipesLimit)
	if !ok {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "op", OpSubscribe, "author_id", id)
	feed, err := h.service.Follow(r.Context(), currentUserID(r), id, recipesLimit)
	if err != nil {
		respondServiceError(w, r, OpSubscribe, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.present.authorFeed(*feed))
}

// HandleUnsubscribe stops following an author
// @Summary Unsubscribe from an author
// @Tags subscriptions
// @Security TokenAuth
// @Param id path int true "Author ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id}/subscribe [delete]
func (h *SubscriptionHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "op", OpUnsubscribe, "author_id", id)
	if err := h.service.Unfollow(r.Context(), currentUserID(r), id); err != nil {
		respondServiceError(w, r, OpUnsubscribe, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
