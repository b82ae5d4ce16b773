package handler

import (
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/ingredient"
)

type IngredientHandler struct {
	service ingredient.Service
}

func NewIngredientHandler(service ingredient.Service) *IngredientHandler {
	return &IngredientHandler{service: service}
}

// HandleList searches the catalog by case-insensitive name prefix
// @Summary Search ingredients
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix"
// @Success 200 {array} domain.Ingredient
// @Router /api/ingredients [get]
func (h *IngredientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Search(r.Context(), r.URL.Query().Get(QueryName))
	if err != nil {
		respondServiceError(w, r, OpListIngredients, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleGet returns one catalog entry
// @Summary Get an ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} ErrorResponse
// @Router /api/ingredients/{id} [get]
func (h *IngredientHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpGetIngredient, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}
