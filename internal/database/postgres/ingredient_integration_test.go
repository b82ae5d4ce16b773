package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestIngredientRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	repo := &IngredientRepository{db: pool}
	ctx := context.Background()

	inserted, err := repo.InsertIngredients(ctx, []domain.NewIngredient{
		{Name: "sugar", MeasurementUnit: "g"},
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "Sugar powder", MeasurementUnit: "g"},
		{Name: "100%_juice", MeasurementUnit: "ml"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, inserted)

	t.Run("re-import skips existing", func(t *testing.T) {
		inserted, err := repo.InsertIngredients(ctx, []domain.NewIngredient{
			{Name: "sugar", MeasurementUnit: "g"},
			{Name: "sugar", MeasurementUnit: "kg"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted, "only the new unit should be inserted")
	})

	t.Run("prefix search is case-insensitive", func(t *testing.T) {
		found, err := repo.SearchIngredients(ctx, "SUG")
		require.NoError(t, err)
		require.Len(t, found, 3)
		for _, ing := range found {
			assert.Contains(t, []string{"sugar", "Sugar powder"}, ing.Name)
		}
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		found, err := repo.SearchIngredients(ctx, "100%_")
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = repo.SearchIngredients(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("get by id", func(t *testing.T) {
		all, err := repo.SearchIngredients(ctx, "")
		require.NoError(t, err)
		require.NotEmpty(t, all)

		got, err := repo.GetIngredientByID(ctx, all[0].ID)
		require.NoError(t, err)
		assert.Equal(t, all[0], *got)

		_, err = repo.GetIngredientByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

		some, err := repo.GetIngredientsByIDs(ctx, []int64{all[0].ID, 999999})
		require.NoError(t, err)
		assert.Len(t, some, 1)
	})
}
