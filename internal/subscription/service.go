// Package subscription maintains the follow graph between users and authors.
package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service follows and unfollows authors and lists followed authors with
// their recent recipes. A nil recipesLimit means every recipe.
type Service interface {
	Follow(ctx context.Context, userID, authorID int64, recipesLimit *int) (*domain.AuthorFeed, error)
	Unfollow(ctx context.Context, userID, authorID int64) error
	List(ctx context.Context, userID int64, recipesLimit *int, page domain.Page) (*domain.AuthorFeedPage, error)
	IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error)
	SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type service struct {
	repo  repository.Subscription
	users repository.User
}

// NewService creates a new subscription service
func NewService(repo repository.Subscription, users repository.User) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Follow(ctx context.Context, userID, authorID int64, recipesLimit *int) (*domain.AuthorFeed, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := validateLimit(recipesLimit); err != nil {
		return nil, err
	}
	if userID == authorID {
		return nil, domain.ErrSelfSubscription
	}

	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, passThrough(err, "failed to load author %d: %w", authorID)
	}

	if err := s.repo.Subscribe(ctx, userID, authorID); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to subscribe to %d: %w", authorID, err)
	}
	metrics.SubscriptionChanges.WithLabelValues(metrics.ActionAdd).Inc()
	logger.FromContext(ctx).Info("Subscribed to author", "author_id", authorID)

	feeds, err := s.feeds(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return nil, err
	}
	feeds[0].IsSubscribed = true
	return &feeds[0], nil
}

func (s *service) Unfollow(ctx context.Context, userID, authorID int64) error {
	if userID <= 0 {
		return domain.ErrUnauthorized
	}
	if userID == authorID {
		return domain.ErrSelfSubscription
	}
	if _, err := s.users.GetUserByID(ctx, authorID); err != nil {
		return passThrough(err, "failed to load author %d: %w", authorID)
	}

	removed, err := s.repo.Unsubscribe(ctx, userID, authorID)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe from %d: %w", authorID, err)
	}
	if !removed {
		return domain.ErrNotSubscribed
	}
	metrics.SubscriptionChanges.WithLabelValues(metrics.ActionRemove).Inc()
	return nil
}

// List returns one page of followed authors, each with a recipe preview
func (s *service) List(ctx context.Context, userID int64, recipesLimit *int, page domain.Page) (*domain.AuthorFeedPage, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := validateLimit(recipesLimit); err != nil {
		return nil, err
	}
	if page.Limit <= 0 {
		page = domain.NewPage(page.Limit, 1)
	}

	authors, count, err := s.repo.ListSubscriptions(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	feeds, err := s.feeds(ctx, authors, recipesLimit)
	if err != nil {
		return nil, err
	}
	for i := range feeds {
		feeds[i].IsSubscribed = true
	}
	return &domain.AuthorFeedPage{Count: count, Results: feeds}, nil
}

func (s *service) IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error) {
	if userID <= 0 || userID == authorID {
		return false, nil
	}
	ok, err := s.repo.IsSubscribed(ctx, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return ok, nil
}

// SubscribedAuthors marks which of authorIDs userID follows. Anonymous
// viewers follow nobody.
func (s *service) SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	if userID <= 0 || len(authorIDs) == 0 {
		return map[int64]bool{}, nil
	}
	followed, err := s.repo.SubscribedAuthors(ctx, userID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscriptions: %w", err)
	}
	return followed, nil
}

// feeds attaches recipe previews and counts to each author with two batched queries
func (s *service) feeds(ctx context.Context, authors []domain.User, recipesLimit *int) ([]domain.AuthorFeed, error) {
	out := make([]domain.AuthorFeed, len(authors))
	if len(authors) == 0 {
		return out, nil
	}

	ids := make([]int64, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	recipes, err := s.repo.GetAuthorRecipes(ctx, ids, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load author recipes: %w", err)
	}
	counts, err := s.repo.CountAuthorRecipes(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}

	for i, a := range authors {
		list := recipes[a.ID]
		if list == nil {
			list = []domain.RecipeSummary{}
		}
		out[i] = domain.AuthorFeed{
			UserProfile:  domain.UserProfile{User: a},
			Recipes:      list,
			RecipesCount: counts[a.ID],
		}
	}
	return out, nil
}

func validateLimit(limit *int) error {
	if limit != nil && *limit < 0 {
		return domain.NewValidationError("recipes_limit", "Must be a non-negative integer")
	}
	return nil
}

func passThrough(err error, format string, id int64) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return fmt.Errorf(format, id, err)
}
