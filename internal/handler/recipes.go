package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/media"
	"github.com/osse101/Foodgram_Go/internal/recipe"
)

// IngredientAmountRequest is one line item of a recipe payload
type IngredientAmountRequest struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Amount int   `json:"amount" validate:"amount"`
}

// RecipeRequest is the create and update payload. Image is a base64 data URL;
// it may be omitted on update to keep the current picture.
type RecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,min=1,dive"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name" validate:"required,max=256"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int                       `json:"cooking_time" validate:"cooking_time"`
}

// ShortLinkResponse carries the absolute short URL of a recipe
type ShortLinkResponse struct {
	ShortLink string `json:"short-link"`
}

type RecipeHandler struct {
	service recipe.Service
	present presenter
}

func NewRecipeHandler(service recipe.Service, images ImageURLer) *RecipeHandler {
	return &RecipeHandler{service: service, present: presenter{images: images}}
}

// HandleList returns a filtered page of recipes, newest first
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param author query int false "Author ID"
// @Param is_favorited query int false "Only favorites (1)"
// @Param is_in_shopping_cart query int false "Only shopping cart (1)"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} RecipePageResponse
// @Router /api/recipes [get]
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	filter := domain.RecipeFilter{
		IsFavorited:      flagParam(r, QueryIsFavorited),
		IsInShoppingCart: flagParam(r, QueryIsInShoppingCart),
		Page:             page,
	}
	if raw := r.URL.Query().Get(QueryAuthor); raw != "" {
		author, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || author <= 0 {
			respondServiceError(w, r, OpListRecipes, domain.NewValidationError(QueryAuthor, ErrMsgInvalidID))
			return
		}
		filter.AuthorID = &author
	}

	result, err := h.service.List(r.Context(), currentUserID(r), filter)
	if err != nil {
		respondServiceError(w, r, OpListRecipes, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.recipePage(result))
}

// HandleCreate publishes a recipe
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body RecipeRequest true "Recipe"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/recipes [post]
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeRecipe(w, r, OpCreateRecipe)
	if !ok {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "op", OpCreateRecipe, "ingredients", len(input.Ingredients))

	view, err := h.service.Create(r.Context(), currentUserID(r), input)
	if err != nil {
		respondServiceError(w, r, OpCreateRecipe, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.present.recipe(view))
}

// HandleGet returns one recipe as seen by the caller
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} RecipeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), currentUserID(r), id)
	if err != nil {
		respondServiceError(w, r, OpGetRecipe, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.recipe(view))
}

// HandleUpdate replaces a recipe's fields and line items
// @Summary Update a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Param request body RecipeRequest true "Recipe"
// @Success 200 {object} RecipeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [patch]
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}
	input, ok := decodeRecipe(w, r, OpUpdateRecipe)
	if !ok {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "op", OpUpdateRecipe, "recipe_id", id, "ingredients", len(input.Ingredients))

	view, err := h.service.Update(r.Context(), currentUserID(r), id, input)
	if err != nil {
		respondServiceError(w, r, OpUpdateRecipe, err)
		return
	}
	respondJSON(w, http.StatusOK, h.present.recipe(view))
}

// HandleDelete removes a recipe owned by the caller
// @Summary Delete a recipe
// @Tags recipes
// @Security TokenAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id} [delete]
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	LogRequestFields(logger.FromContext(r.Context()), "op", OpDeleteRecipe, "recipe_id", id)
	if err := h.service.Delete(r.Context(), currentUserID(r), id); err != nil {
		respondServiceError(w, r, OpDeleteRecipe, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetLink returns the short link of a recipe
// @Summary Get a short link
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} ShortLinkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/recipes/{id}/get-link [get]
func (h *RecipeHandler) HandleGetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, PathID)
	if !ok {
		return
	}

	link, err := h.service.ShortLink(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, OpShortLink, err)
		return
	}
	respondJSON(w, http.StatusOK, ShortLinkResponse{ShortLink: link})
}

// HandleShortLinkRedirect sends a short link visitor to the recipe page
// @Summary Follow a short link
// @Tags recipes
// @Param code path string true "Short code"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /s/{code} [get]
func (h *RecipeHandler) HandleShortLinkRedirect(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.ResolveShortLink(r.Context(), chi.URLParam(r, PathCode))
	if err != nil {
		respondServiceError(w, r, OpResolveShortLink, err)
		return
	}
	http.Redirect(w, r, recipe.RecipePagePath+strconv.FormatInt(id, 10), http.StatusFound)
}

// decodeRecipe validates the payload and converts it to a service input
func decodeRecipe(w http.ResponseWriter, r *http.Request, op string) (domain.RecipeInput, bool) {
	var req RecipeRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return domain.RecipeInput{}, false
	}

	input := domain.RecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Ingredients: make([]domain.IngredientLine, len(req.Ingredients)),
	}
	for i, line := range req.Ingredients {
		input.Ingredients[i] = domain.IngredientLine{IngredientID: line.ID, Amount: line.Amount}
	}
	if req.Image != "" {
		img, err := media.DecodeDataURL(req.Image)
		if err != nil {
			respondServiceError(w, r, op, err)
			return domain.RecipeInput{}, false
		}
		input.Image = img
	}
	return input, true
}
