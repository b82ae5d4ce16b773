package recipe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/media"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
	"github.com/osse101/Foodgram_Go/internal/validation"
)

// Service composes recipes from catalog ingredients and serves them to viewers.
// Viewer id 0 is an anonymous visitor.
type Service interface {
	Create(ctx context.Context, authorID int64, input domain.RecipeInput) (*domain.RecipeView, error)
	Update(ctx context.Context, userID, recipeID int64, input domain.RecipeInput) (*domain.RecipeView, error)
	Delete(ctx context.Context, userID, recipeID int64) error
	Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeView, error)
	List(ctx context.Context, viewerID int64, filter domain.RecipeFilter) (*domain.RecipePage, error)
	ShortLink(ctx context.Context, recipeID int64) (string, error)
	ResolveShortLink(ctx context.Context, code string) (int64, error)
}

type service struct {
	repo          repository.Recipe
	ingredients   repository.Ingredient
	images        media.Store
	publicBaseURL string
}

// NewService creates a recipe service. publicBaseURL prefixes generated short links.
func NewService(repo repository.Recipe, ingredients repository.Ingredient, images media.Store, publicBaseURL string) Service {
	return &service{
		repo:          repo,
		ingredients:   ingredients,
		images:        images,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *service) Create(ctx context.Context, authorID int64, input domain.RecipeInput) (*domain.RecipeView, error) {
	if authorID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if len(input.Image) == 0 {
		return nil, domain.NewValidationError("image", MsgImageRequired)
	}
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	stored, err := s.images.Save(ctx, media.DirRecipes, input.Image)
	if err != nil {
		return nil, wrapImageError(err)
	}
	metrics.ImagesStored.WithLabelValues(media.DirRecipes).Inc()

	recipe := &domain.Recipe{
		AuthorID:    authorID,
		Name:        input.Name,
		Image:       stored,
		Text:        input.Text,
		CookingTime: input.CookingTime,
	}
	if err := s.repo.CreateRecipe(ctx, recipe, input.Ingredients); err != nil {
		s.removeImage(ctx, stored)
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	metrics.RecipesCreated.Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeCreated, "recipe_id", recipe.ID, "author_id", authorID)
	return s.Get(ctx, authorID, recipe.ID)
}

// Update replaces the recipe fields and its whole ingredient list. A nil image
// keeps the current picture.
func (s *service) Update(ctx context.Context, userID, recipeID int64, input domain.RecipeInput) (*domain.RecipeView, error) {
	current, err := s.ownedRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &input); err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = input.Name
	updated.Text = input.Text
	updated.CookingTime = input.CookingTime

	var replaced string
	if len(input.Image) > 0 {
		stored, err := s.images.Save(ctx, media.DirRecipes, input.Image)
		if err != nil {
			return nil, wrapImageError(err)
		}
		metrics.ImagesStored.WithLabelValues(media.DirRecipes).Inc()
		replaced, updated.Image = current.Image, stored
	}

	if err := s.repo.UpdateRecipe(ctx, &updated, input.Ingredients); err != nil {
		if replaced != "" {
			s.removeImage(ctx, updated.Image)
		}
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgUpdateFailed, recipeID, err)
	}
	if replaced != "" {
		s.removeImage(ctx, replaced)
	}

	metrics.RecipesUpdated.Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeUpdated, "recipe_id", recipeID)
	return s.Get(ctx, userID, recipeID)
}

func (s *service) Delete(ctx context.Context, userID, recipeID int64) error {
	current, err := s.ownedRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteRecipe(ctx, recipeID); err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf(ErrMsgDeleteFailed, recipeID, err)
	}
	s.removeImage(ctx, current.Image)

	metrics.RecipesDeleted.Inc()
	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", recipeID)
	return nil
}

func (s *service) Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeView, error) {
	if recipeID <= 0 {
		return nil, domain.ErrRecipeNotFound
	}
	view, err := s.repo.GetRecipeView(ctx, viewerID, recipeID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLoadFailed, recipeID, err)
	}
	return view, nil
}

// List returns one page of recipes, newest first. Membership filters only
// apply to authenticated viewers; anonymous viewers get an empty page.
func (s *service) List(ctx context.Context, viewerID int64, filter domain.RecipeFilter) (*domain.RecipePage, error) {
	filter.ViewerID = viewerID
	if viewerID <= 0 && (filter.IsFavorited || filter.IsInShoppingCart) {
		return &domain.RecipePage{Results: []domain.RecipeView{}}, nil
	}
	if filter.Page.Limit <= 0 {
		filter.Page = domain.NewPage(filter.Page.Limit, 1)
	}

	page, err := s.repo.ListRecipeViews(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	if page.Results == nil {
		page.Results = []domain.RecipeView{}
	}
	return page, nil
}

// ShortLink returns an absolute short URL for an existing recipe
func (s *service) ShortLink(ctx context.Context, recipeID int64) (string, error) {
	if recipeID <= 0 {
		return "", domain.ErrRecipeNotFound
	}
	if _, err := s.repo.GetRecipeSummary(ctx, recipeID); err != nil {
		if isDomainError(err) {
			return "", err
		}
		return "", fmt.Errorf(ErrMsgLoadFailed, recipeID, err)
	}
	return s.publicBaseURL + ShortLinkPrefix + EncodeShortCode(recipeID), nil
}

// ResolveShortLink maps a short code back to the id of an existing recipe
func (s *service) ResolveShortLink(ctx context.Context, code string) (int64, error) {
	id, ok := DecodeShortCode(code)
	if !ok {
		return 0, domain.ErrRecipeNotFound
	}
	if _, err := s.repo.GetRecipeSummary(ctx, id); err != nil {
		if isDomainError(err) {
			return 0, err
		}
		return 0, fmt.Errorf(ErrMsgLoadFailed, id, err)
	}
	return id, nil
}

// EncodeShortCode is the base 36 form of a recipe id
func EncodeShortCode(id int64) string {
	return strconv.FormatInt(id, ShortLinkBase)
}

// DecodeShortCode parses a code produced by EncodeShortCode
func DecodeShortCode(code string) (int64, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(code, ShortLinkBase, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ownedRecipe loads the recipe and rejects callers other than its author
func (s *service) ownedRecipe(ctx context.Context, userID, recipeID int64) (*domain.Recipe, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if recipeID <= 0 {
		return nil, domain.ErrRecipeNotFound
	}
	current, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgLoadFailed, recipeID, err)
	}
	if current.AuthorID != userID {
		logger.FromContext(ctx).Warn(LogMsgForbiddenRecipeEdit, "recipe_id", recipeID, "author_id", current.AuthorID)
		return nil, domain.ErrForbidden
	}
	return current, nil
}

// validate normalizes input in place and checks it against the recipe rules.
// Every ingredient must exist in the catalog.
func (s *service) validate(ctx context.Context, input *domain.RecipeInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Text = strings.TrimSpace(input.Text)

	switch {
	case input.Name == "":
		return domain.NewValidationError("name", MsgNameRequired)
	case utf8.RuneCountInString(input.Name) > validation.MaxRecipeNameLength:
		return domain.NewValidationError("name", fmt.Sprintf(MsgNameTooLong, validation.MaxRecipeNameLength))
	case input.Text == "":
		return domain.NewValidationError("text", MsgTextRequired)
	case !validation.ValidCookingTime(input.CookingTime):
		return domain.NewValidationError("cooking_time",
			fmt.Sprintf(MsgCookingTimeRange, validation.MinCookingTime, validation.MaxCookingTime))
	case len(input.Ingredients) == 0:
		return domain.NewValidationError("ingredients", MsgIngredientsRequired)
	}

	ids := make([]int64, 0, len(input.Ingredients))
	seen := make(map[int64]bool, len(input.Ingredients))
	for _, line := range input.Ingredients {
		if seen[line.IngredientID] {
			return domain.NewValidationError("ingredients", fmt.Sprintf(MsgDuplicateIngredient, line.IngredientID))
		}
		seen[line.IngredientID] = true
		if !validation.ValidAmount(line.Amount) {
			return domain.NewValidationError("ingredients",
				fmt.Sprintf(MsgAmountOutOfRange, line.IngredientID, validation.MinAmount, validation.MaxAmount))
		}
		ids = append(ids, line.IngredientID)
	}

	found, err := s.ingredients.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf(ErrMsgIngredientLookup, err)
	}
	known := make(map[int64]bool, len(found))
	for _, item := range found {
		known[item.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return domain.NewValidationError("ingredients", fmt.Sprintf(MsgUnknownIngredient, id))
		}
	}
	return nil
}

func (s *service) removeImage(ctx context.Context, stored string) {
	if err := s.images.Delete(ctx, stored); err != nil {
		logger.FromContext(ctx).Warn(LogMsgImageCleanupFailed, "image", stored, "error", err)
	}
}

func wrapImageError(err error) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf(ErrMsgStoreImageFailed, err)
}
