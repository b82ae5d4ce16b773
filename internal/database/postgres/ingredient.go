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

// IngredientRepository implements repository.Ingredient for PostgreSQL
type IngredientRepository struct {
	db *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *pgxpool.Pool) repository.Ingredient {
	return &IngredientRepository{db: db}
}

// SearchIngredients performs a case-insensitive prefix match on name
func (r *IngredientRepository) SearchIngredients(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	query := `
		SELECT ingredient_id, name, measurement_unit
		FROM ingredients
		WHERE LOWER(name) LIKE LOWER($1) || '%'
		ORDER BY name, measurement_unit
	`
	rows, err := r.db.Query(ctx, query, escapeLike(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return collectIngredients(rows)
}

// GetIngredientByID returns a single ingredient or domain.ErrIngredientNotFound
func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	query := `SELECT ingredient_id, name, measurement_unit FROM ingredients WHERE ingredient_id = $1`
	var ing domain.Ingredient
	err := r.db.QueryRow(ctx, query, id).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient %d: %w", id, err)
	}
	return &ing, nil
}

// GetIngredientsByIDs returns the ingredients that exist among ids
func (r *IngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	if len(ids) == 0 {
		return []domain.Ingredient{}, nil
	}
	query := `
		SELECT ingredient_id, name, measurement_unit
		FROM ingredients
		WHERE ingredient_id = ANY($1)
		ORDER BY ingredient_id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}
	return collectIngredients(rows)
}

// InsertIngredients bulk inserts the catalog in one round trip, skipping
// existing name+unit pairs. Returns how many rows were actually inserted.
func (r *IngredientRepository) InsertIngredients(ctx context.Context, items []domain.NewIngredient) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	names := make([]string, len(items))
	units := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
		units[i] = item.MeasurementUnit
	}

	query := `
		INSERT INTO ingredients (name, measurement_unit)
		SELECT * FROM UNNEST($1::text[], $2::text[])
		ON CONFLICT ON CONSTRAINT ` + ConstraintIngredientNameUnit + ` DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, names, units)
	if err != nil {
		return 0, fmt.Errorf("failed to insert ingredients: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func collectIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	ingredients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ingredient, error) {
		var ing domain.Ingredient
		err := row.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
		return ing, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ingredients: %w", err)
	}
	return ingredients, nil
}
