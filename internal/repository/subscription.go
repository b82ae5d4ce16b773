package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Subscription defines persistence for the follow graph
type Subscription interface {
	Subscribe(ctx context.Context, userID, authorID int64) error
	// Unsubscribe reports whether a row was deleted.
	Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error)
	IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error)
	// SubscribedAuthors returns the subset of authorIDs that userID follows.
	SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
	ListSubscriptions(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error)
	// GetAuthorRecipes returns up to limit most recent recipes per author; a nil
	// limit returns all of them.
	GetAuthorRecipes(ctx context.Context, authorIDs []int64, limit *int) (map[int64][]domain.RecipeSummary, error)
	CountAuthorRecipes(ctx context.Context, authorIDs []int64) (map[int64]int, error)
}
