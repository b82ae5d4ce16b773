package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Recipe defines persistence for recipes and their line items.
// Create and update write the recipe row and every line item in one transaction.
type Recipe interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error
	// UpdateRecipe replaces the recipe fields and its whole line item set.
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error
	DeleteRecipe(ctx context.Context, id int64) error
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
	GetRecipeSummary(ctx context.Context, id int64) (*domain.RecipeSummary, error)
	GetRecipeView(ctx context.Context, viewerID, id int64) (*domain.RecipeView, error)
	ListRecipeViews(ctx context.Context, filter domain.RecipeFilter) (*domain.RecipePage, error)
}
