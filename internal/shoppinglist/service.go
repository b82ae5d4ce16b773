// Package shoppinglist turns a user's shopping cart into a downloadable list
// of ingredient totals.
package shoppinglist

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service builds and renders shopping lists
type Service interface {
	Build(ctx context.Context, userID int64) (*domain.ShoppingList, error)
	Download(ctx context.Context, userID int64, format Format) (*Document, error)
}

type service struct {
	cart     repository.ShoppingCart
	language string
	now      func() time.Time
}

// NewService creates a shopping list service collating names for language
func NewService(cart repository.ShoppingCart, language string) Service {
	if language == "" {
		language = DefaultLanguage
	}
	return &service{cart: cart, language: language, now: time.Now}
}

// Build aggregates every line item of every recipe in the cart. An empty cart
// is an error rather than an empty list.
func (s *service) Build(ctx context.Context, userID int64) (*domain.ShoppingList, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}

	contents, err := s.cart.GetCartContents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCartFailed, err)
	}
	if len(contents.Recipes) == 0 {
		return nil, domain.ErrEmptyShoppingCart
	}
	recipes, lines := contents.Recipes, contents.Lines

	list := &domain.ShoppingList{
		UserID:      userID,
		Items:       Aggregate(lines, NewCollator(s.language)),
		Recipes:     recipes,
		GeneratedAt: s.now(),
	}
	metrics.ShoppingListItems.Observe(float64(len(list.Items)))
	logger.FromContext(ctx).Debug("Shopping list built",
		"recipes", len(recipes),
		"lines", len(lines),
		"items", len(list.Items))
	return list, nil
}

func (s *service) Download(ctx context.Context, userID int64, format Format) (*Document, error) {
	list, err := s.Build(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc, err := Render(list, format)
	if err != nil {
		return nil, err
	}
	metrics.ShoppingListsRendered.WithLabelValues(string(format)).Inc()
	return doc, nil
}
