package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/collection"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// CollectionHandler serves add and remove for one collection kind
type CollectionHandler struct {
	service collection.Service
	present presenter
}

func NewCollectionHandler(service collection.Service, images ImageURLer) *CollectionHandler {
	return &CollectionHandler{service: service, present: presenter{images: images}}
}

// HandleAdd puts a recipe into the caller's collection
// @Summary Add a recipe to favorites or the shopping cart
// @Tags collections
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 201 {object} RecipeSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id}/favorite [post]
// @Router /api/recipes/{id}/shopping_cart [post]
func (h *CollectionHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "collection", h.service.Kind(), "recipe_id", id)
	summary, err := h.service.Add(r.Context(), currentUserID(r), id)
	if err != nil {
		respondServiceError(w, r, fmt.Sprintf(OpCollectionAdd, h.service.Kind()), err)
		return
	}
	respondJSON(w, http.StatusCreated, h.present.summary(*summary))
}

// HandleRemove takes a recipe out of the caller's collection
// @Summary Remove a recipe from favorites or the shopping cart
// @Tags collections
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id}/favorite [delete]
// @Router /api/recipes/{id}/shopping_cart [delete]
func (h *CollectionHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "collection", h.service.Kind(), "recipe_id", id)
	if err := h.service.Remove(r.Context(), currentUserID(r), id); err != nil {
		respondServiceError(w, r, fmt.Sprintf(OpCollectionRemove, h.service.Kind()), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
