package domain

import "time"

// Recipe is a published recipe with its line items.
type Recipe struct {
	ID          int64
	AuthorID    int64
	Name        string
	Image       string
	Text        string
	CookingTime int
	CreatedAt   time.Time
	Ingredients []RecipeIngredient
}

// RecipeIngredient is one line item of a recipe joined with its catalog entry.
type RecipeIngredient struct {
	IngredientID    int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// IngredientLine is a line item as submitted by an author.
type IngredientLine struct {
	IngredientID int64
	Amount       int
}

// RecipeInput carries author supplied fields for create and update.
// Image holds raw, already decoded bytes; nil on update keeps the current image.
type RecipeInput struct {
	Name        string
	Text        string
	CookingTime int
	Image       []byte
	Ingredients []IngredientLine
}

// RecipeSummary is the short form used in collection and subscription payloads.
type RecipeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeView is a recipe decorated for a viewer.
type RecipeView struct {
	Recipe
	Author           UserProfile
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeFilter narrows a recipe listing.
type RecipeFilter struct {
	AuthorID         *int64
	ViewerID         int64
	IsFavorited      bool
	IsInShoppingCart bool
	Page             Page
}

// RecipePage is one page of a recipe listing.
type RecipePage struct {
	Count   int
	Results []RecipeView
}
