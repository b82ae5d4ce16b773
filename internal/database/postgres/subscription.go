package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// SubscriptionRepository implements repository.Subscription for PostgreSQL
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(db *pgxpool.Pool) repository.Subscription {
	return &SubscriptionRepository{db: db}
}

// Subscribe records that userID follows authorID
func (r *SubscriptionRepository) Subscribe(ctx context.Context, userID, authorID int64) error {
	_, err := r.db.Exec(ctx, `INSERT INTO subscriptions (user_id, author_id) VALUES ($1, $2)`, userID, authorID)
	switch {
	case err == nil:
		return nil
	case isConstraintViolation(err, PgErrorCodeUniqueViolation, ""):
		return domain.ErrAlreadySubscribed
	case isConstraintViolation(err, PgErrorCodeCheckViolation, ConstraintSelfSubscription):
		return domain.ErrSelfSubscription
	case isConstraintViolation(err, PgErrorCodeForeignKeyViolation, ""):
		return domain.ErrUserNotFound
	default:
		return fmt.Errorf("failed to subscribe %d to %d: %w", userID, authorID, err)
	}
}

// Unsubscribe removes the follow edge, reporting whether it existed
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to unsubscribe %d from %d: %w", userID, authorID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// IsSubscribed reports whether userID follows authorID
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE user_id = $1 AND author_id = $2)`
	if err := r.db.QueryRow(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return exists, nil
}

// SubscribedAuthors returns which of authorIDs are followed by userID
func (r *SubscriptionRepository) SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(authorIDs))
	if userID == 0 || len(authorIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT author_id FROM subscriptions WHERE user_id = $1 AND author_id = ANY($2)`, userID, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribed authors: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan subscribed authors: %w", err)
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// ListSubscriptions returns one page of authors followed by userID, most recent first
func (r *SubscriptionRepository) ListSubscriptions(ctx context.Context, userID int64, page domain.Page) ([]domain.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	query := `
		SELECT u.user_id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.avatar, u.created_at
		FROM subscriptions s
		JOIN users u ON u.user_id = s.author_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, u.user_id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	authors := make([]domain.User, 0, page.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}
	return authors, total, nil
}

// GetAuthorRecipes returns the newest recipes of each author, at most limit
// per author when limit is set.
func (r *SubscriptionRepository) GetAuthorRecipes(ctx context.Context, authorIDs []int64, limit *int) (map[int64][]domain.RecipeSummary, error) {
	result := make(map[int64][]domain.RecipeSummary, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT author_id, recipe_id, name, image, cooking_time
		FROM (
			SELECT r.author_id, r.recipe_id, r.name, r.image, r.cooking_time, r.created_at,
			       ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.created_at DESC, r.recipe_id DESC) AS rn
			FROM recipes r
			WHERE r.author_id = ANY($1)
		) ranked
		WHERE $2::int IS NULL OR rn <= $2::int
		ORDER BY author_id, rn
	`
	rows, err := r.db.Query(ctx, query, authorIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get author recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var authorID int64
		var s domain.RecipeSummary
		if err := rows.Scan(&authorID, &s.ID, &s.Name, &s.Image, &s.CookingTime); err != nil {
			return nil, fmt.Errorf("failed to scan author recipe: %w", err)
		}
		result[authorID] = append(result[authorID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate author recipes: %w", err)
	}
	return result, nil
}

// CountAuthorRecipes returns the total number of recipes per author
func (r *SubscriptionRepository) CountAuthorRecipes(ctx context.Context, authorIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT author_id, COUNT(*) FROM recipes WHERE author_id = ANY($1) GROUP BY author_id`, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var authorID int64
		var count int
		if err := rows.Scan(&authorID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan recipe count: %w", err)
		}
		result[authorID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe counts: %w", err)
	}
	return result, nil
}
