package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Ingredient defines access to the ingredient catalog
type Ingredient interface {
	// SearchIngredients returns ingredients whose name starts with prefix,
	// case-insensitively. An empty prefix returns the whole catalog.
	SearchIngredients(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
	// InsertIngredients bulk inserts, skipping name+unit pairs that already exist.
	InsertIngredients(ctx context.Context, items []domain.NewIngredient) (int, error)
}
