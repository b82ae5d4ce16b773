package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const recipeViewSelect = `
	SELECT r.recipe_id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at,
	       u.email, u.username, u.first_name, u.last_name, u.avatar,
	       EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = $1::bigint AND s.author_id = r.author_id),
	       EXISTS (SELECT 1 FROM favorite_recipes f WHERE f.user_id = $1::bigint AND f.recipe_id = r.recipe_id),
	       EXISTS (SELECT 1 FROM shopping_cart c WHERE c.user_id = $1::bigint AND c.recipe_id = r.recipe_id)
	FROM recipes r
	JOIN users u ON u.user_id = r.author_id
`

const recipeListFilter = `
	WHERE ($2::bigint IS NULL OR r.author_id = $2::bigint)
	  AND (NOT $3::boolean OR EXISTS (
	        SELECT 1 FROM favorite_recipes f WHERE f.user_id = $1::bigint AND f.recipe_id = r.recipe_id))
	  AND (NOT $4::boolean OR EXISTS (
	        SELECT 1 FROM shopping_cart c WHERE c.user_id = $1::bigint AND c.recipe_id = r.recipe_id))
`

// RecipeRepository implements repository.Recipe for PostgreSQL
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) repository.Recipe {
	return &RecipeRepository{db: db}
}

// CreateRecipe inserts the recipe and its line items atomically
func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO recipes (author_id, name, image, text, cooking_time)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING recipe_id, created_at
		`
		err := tx.QueryRow(ctx, query,
			recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime,
		).Scan(&recipe.ID, &recipe.CreatedAt)
		if err != nil {
			if isConstraintViolation(err, PgErrorCodeForeignKeyViolation, "") {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to insert recipe: %w", err)
		}
		return insertLines(ctx, tx, recipe.ID, lines)
	})
}

// UpdateRecipe rewrites the recipe row, deletes every line item and inserts
// the new set, all in one transaction.
func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE recipes
			SET name = $2, image = $3, text = $4, cooking_time = $5
			WHERE recipe_id = $1
		`
		tag, err := tx.Exec(ctx, query, recipe.ID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime)
		if err != nil {
			return fmt.Errorf("failed to update recipe %d: %w", recipe.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrRecipeNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}
		return insertLines(ctx, tx, recipe.ID, lines)
	})
}

// insertLines copies the line items of a recipe, keeping submission order
func insertLines(ctx context.Context, tx pgx.Tx, recipeID int64, lines []domain.IngredientLine) error {
	rows := make([][]any, len(lines))
	for i, line := range lines {
		rows[i] = []any{recipeID, line.IngredientID, line.Amount, i}
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"recipe_ingredients"},
		[]string{"recipe_id", "ingredient_id", "amount", "position"},
		pgx.CopyFromRows(rows),
	)
	switch {
	case err == nil:
		return nil
	case isConstraintViolation(err, PgErrorCodeForeignKeyViolation, ConstraintRecipeIngredientFK):
		return domain.NewValidationError("ingredients", "unknown ingredient")
	case isConstraintViolation(err, PgErrorCodeUniqueViolation, ConstraintRecipeIngredientPK):
		return domain.NewValidationError("ingredients", "ingredient listed more than once")
	default:
		return fmt.Errorf("failed to insert recipe ingredients: %w", err)
	}
}

// DeleteRecipe removes a recipe; line items and memberships cascade
func (r *RecipeRepository) DeleteRecipe(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// GetRecipe returns the bare recipe with its line items
func (r *RecipeRepository) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	query := `
		SELECT recipe_id, author_id, name, image, text, cooking_time, created_at
		FROM recipes WHERE recipe_id = $1
	`
	var recipe domain.Recipe
	err := r.db.QueryRow(ctx, query, id).Scan(&recipe.ID, &recipe.AuthorID, &recipe.Name,
		&recipe.Image, &recipe.Text, &recipe.CookingTime, &recipe.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}

	lines, err := loadLines(ctx, r.db, []int64{id})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = lines[id]
	return &recipe, nil
}

// GetRecipeSummary returns the short form of a recipe
func (r *RecipeRepository) GetRecipeSummary(ctx context.Context, id int64) (*domain.RecipeSummary, error) {
	query := `SELECT recipe_id, name, image, cooking_time FROM recipes WHERE recipe_id = $1`
	var s domain.RecipeSummary
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe summary %d: %w", id, err)
	}
	return &s, nil
}

// GetRecipeView returns a recipe decorated for viewerID (0 for anonymous)
func (r *RecipeRepository) GetRecipeView(ctx context.Context, viewerID, id int64) (*domain.RecipeView, error) {
	rows, err := r.db.Query(ctx, recipeViewSelect+` WHERE r.recipe_id = $2`, viewerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	views, err := r.collectViews(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, domain.ErrRecipeNotFound
	}
	return &views[0], nil
}

// ListRecipeViews returns one page of recipes, newest first
func (r *RecipeRepository) ListRecipeViews(ctx context.Context, filter domain.RecipeFilter) (*domain.RecipePage, error) {
	args := []any{filter.ViewerID, filter.AuthorID, filter.IsFavorited, filter.IsInShoppingCart}

	var count int
	countQuery := `SELECT COUNT(*) FROM recipes r` + recipeListFilter
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	listQuery := recipeViewSelect + recipeListFilter + `
		ORDER BY r.created_at DESC, r.recipe_id DESC
		LIMIT $5 OFFSET $6
	`
	rows, err := r.db.Query(ctx, listQuery, append(args, filter.Page.Limit, filter.Page.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	views, err := r.collectViews(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &domain.RecipePage{Count: count, Results: views}, nil
}

func (r *RecipeRepository) collectViews(ctx context.Context, rows pgx.Rows) ([]domain.RecipeView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecipeView, error) {
		var v domain.RecipeView
		err := row.Scan(
			&v.ID, &v.AuthorID, &v.Name, &v.Image, &v.Text, &v.CookingTime, &v.CreatedAt,
			&v.Author.Email, &v.Author.Username, &v.Author.FirstName, &v.Author.LastName, &v.Author.Avatar,
			&v.Author.IsSubscribed, &v.IsFavorited, &v.IsInShoppingCart,
		)
		v.Author.ID = v.AuthorID
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recipes: %w", err)
	}
	if len(views) == 0 {
		return views, nil
	}

	ids := make([]int64, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}
	lines, err := loadLines(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Ingredients = lines[views[i].ID]
	}
	return views, nil
}

// loadLines fetches the line items of the given recipes keyed by recipe id
func loadLines(ctx context.Context, q querier, recipeIDs []int64) (map[int64][]domain.RecipeIngredient, error) {
	query := `
		SELECT ri.recipe_id, i.ingredient_id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY ri.recipe_id, ri.position
	`
	rows, err := q.Query(ctx, query, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.RecipeIngredient, len(recipeIDs))
	for rows.Next() {
		var recipeID int64
		var line domain.RecipeIngredient
		if err := rows.Scan(&recipeID, &line.IngredientID, &line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		result[recipeID] = append(result[recipeID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}
	return result, nil
}
