// Package collection manages per-user recipe sets. Favorites and the shopping
// cart are the same relation distinguished by kind.
package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service adds, removes and checks recipes in one collection kind
type Service interface {
	Kind() domain.CollectionKind
	Add(ctx context.Context, userID, recipeID int64) (*domain.RecipeSummary, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	Contains(ctx context.Context, userID, recipeID int64) (bool, error)
}

type service struct {
	kind    domain.CollectionKind
	repo    repository.Collection
	recipes repository.Recipe
}

// NewService creates the service for kind. It panics on an unknown kind, which
// is a wiring mistake rather than a runtime condition.
func NewService(kind domain.CollectionKind, repo repository.Collection, recipes repository.Recipe) Service {
	if !kind.Valid() {
		panic(fmt.Sprintf("collection: unknown kind %q", kind))
	}
	return &service{kind: kind, repo: repo, recipes: recipes}
}

func (s *service) Kind() domain.CollectionKind {
	return s.kind
}

// Add puts the recipe into the user's collection and returns its summary.
// The storage uniqueness constraint decides races between concurrent adds.
func (s *service) Add(ctx context.Context, userID, recipeID int64) (*domain.RecipeSummary, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	summary, err := s.recipes.GetRecipeSummary(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load recipe %d: %w", recipeID, err)
	}

	if err := s.repo.AddToCollection(ctx, s.kind, userID, recipeID); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrRecipeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add recipe %d to %s: %w", recipeID, s.kind, err)
	}

	metrics.CollectionChanges.WithLabelValues(string(s.kind), metrics.ActionAdd).Inc()
	logger.FromContext(ctx).Debug("Recipe added to collection", "collection", s.kind, "recipe_id", recipeID)
	return summary, nil
}

// Remove deletes the membership; removing an absent recipe is an error
func (s *service) Remove(ctx context.Context, userID, recipeID int64) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	if _, err := s.recipes.GetRecipeSummary(ctx, recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return err
		}
		return fmt.Errorf("failed to load recipe %d: %w", recipeID, err)
	}

	removed, err := s.repo.RemoveFromCollection(ctx, s.kind, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove recipe %d from %s: %w", recipeID, s.kind, err)
	}
	if !removed {
		return s.kind.NotMemberError()
	}

	metrics.CollectionChanges.WithLabelValues(string(s.kind), metrics.ActionRemove).Inc()
	return nil
}

func (s *service) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	ok, err := s.repo.IsInCollection(ctx, s.kind, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to check %s membership: %w", s.kind, err)
	}
	return ok, nil
}
