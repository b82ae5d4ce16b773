package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// CollectionRepository stores favorites and the shopping cart. Both are
// (user_id, recipe_id) tables with a composite primary key, so one set of
// queries serves both with only the table name varying.
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository.
// It implements both repository.Collection and repository.ShoppingCart.
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// AddToCollection inserts a membership row. Concurrent duplicate adds are
// resolved by the primary key; the loser gets the same conflict error.
func (r *CollectionRepository) AddToCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) error {
	table, err := collectionTable(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (user_id, recipe_id) VALUES ($1, $2)`, table)
	_, err = r.db.Exec(ctx, query, userID, recipeID)
	switch {
	case err == nil:
		return nil
	case isConstraintViolation(err, PgErrorCodeUniqueViolation, ""):
		return kind.AlreadyMemberError()
	case isConstraintViolation(err, PgErrorCodeForeignKeyViolation, table+"_recipe_id_fkey"):
		return domain.ErrRecipeNotFound
	case isConstraintViolation(err, PgErrorCodeForeignKeyViolation, table+"_user_id_fkey"):
		return domain.ErrUserNotFound
	default:
		return fmt.Errorf("failed to add recipe %d to %s: %w", recipeID, kind, err)
	}
}

// RemoveFromCollection deletes a membership row, reporting whether it existed
func (r *CollectionRepository) RemoveFromCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) (bool, error) {
	table, err := collectionTable(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, table)
	tag, err := r.db.Exec(ctx, query, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to remove recipe %d from %s: %w", recipeID, kind, err)
	}
	return tag.RowsAffected() > 0, nil
}

// IsInCollection reports membership
func (r *CollectionRepository) IsInCollection(ctx context.Context, kind domain.CollectionKind, userID, recipeID int64) (bool, error) {
	table, err := collectionTable(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND recipe_id = $2)`, table)
	if err := r.db.QueryRow(ctx, query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s membership: %w", kind, err)
	}
	return exists, nil
}

// GetCartContents reads the cart recipes and their line items inside one
// read-only snapshot so both halves agree under concurrent cart changes
func (r *CollectionRepository) GetCartContents(ctx context.Context, userID int64) (*domain.CartContents, error) {
	var contents domain.CartContents
	err := withTxOptions(ctx, r.db, snapshotTxOptions, func(tx pgx.Tx) error {
		recipes, err := cartRecipes(ctx, tx, userID)
		if err != nil {
			return err
		}
		lines, err := cartLines(ctx, tx, userID)
		if err != nil {
			return err
		}
		contents = domain.CartContents{Recipes: recipes, Lines: lines}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contents, nil
}

// cartRecipes lists the recipes in a user's cart ordered by name
func cartRecipes(ctx context.Context, q querier, userID int64) ([]domain.RecipeSummary, error) {
	query := `
		SELECT r.recipe_id, r.name, r.image, r.cooking_time
		FROM shopping_cart c
		JOIN recipes r ON r.recipe_id = c.recipe_id
		WHERE c.user_id = $1
		ORDER BY r.name, r.recipe_id
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart recipes: %w", err)
	}
	recipes, err := pgx.CollectRows(rows, scanRecipeSummary)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cart recipes: %w", err)
	}
	return recipes, nil
}

// cartLines returns every line item of every recipe in the cart, unaggregated
func cartLines(ctx context.Context, q querier, userID int64) ([]domain.ShoppingLine, error) {
	query := `
		SELECT ri.recipe_id, i.name, i.measurement_unit, ri.amount
		FROM shopping_cart c
		JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE c.user_id = $1
		ORDER BY ri.recipe_id, ri.position
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart lines: %w", err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ShoppingLine, error) {
		var l domain.ShoppingLine
		err := row.Scan(&l.RecipeID, &l.Name, &l.MeasurementUnit, &l.Amount)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cart lines: %w", err)
	}
	return lines, nil
}

func scanRecipeSummary(row pgx.CollectableRow) (domain.RecipeSummary, error) {
	var s domain.RecipeSummary
	err := row.Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime)
	return s, err
}
