package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Collection is the single user-recipe relation store shared by favorites and
// the shopping cart. Duplicate adds must surface kind.AlreadyMemberError().
type Collection interface {
	AddToCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) error
	// RemoveFromCollection reports whether a row was deleted.
	RemoveFromCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) (bool, error)
	IsInCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) (bool, error)
}

// ShoppingCart exposes the read side used by the shopping list aggregator
type ShoppingCart interface {
	// GetCartContents returns the cart recipes and every one of their line
	// items, read from a single snapshot.
	GetCartContents(ctx context.Context, userID int64) (*domain.CartContents, error)
}
