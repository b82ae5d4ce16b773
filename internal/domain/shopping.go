package domain

import "time"

// ShoppingLine is one recipe line item expanded from a user's cart.
type ShoppingLine struct {
	RecipeID        int64
	Name            string
	MeasurementUnit string
	Amount          int
}

// CartContents is a consistent read of a user's cart: the recipes and the
// line items expanded from exactly those recipes.
type CartContents struct {
	Recipes []RecipeSummary
	Lines   []ShoppingLine
}

// ShoppingListItem is an aggregation group: every cart line sharing a name and unit.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// ShoppingList is the aggregated projection of a user's cart.
type ShoppingList struct {
	UserID      int64
	Items       []ShoppingListItem
	Recipes     []RecipeSummary
	GeneratedAt time.Time
}
