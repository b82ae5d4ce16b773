package ingredient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

func TestService_Search(t *testing.T) {
	repo := newFakeRepository(
		domain.NewIngredient{Name: "Sugar", MeasurementUnit: "g"},
		domain.NewIngredient{Name: "salt", MeasurementUnit: "g"},
		domain.NewIngredient{Name: "flour", MeasurementUnit: "g"},
	)
	svc := NewService(repo)

	t.Run("prefix is case insensitive and trimmed", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "  s ")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		items, err := svc.Search(context.Background(), "zzz")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo.err = errors.New("connection reset")
		defer func() { repo.err = nil }()

		_, err := svc.Search(context.Background(), "s")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to search ingredients")
	})
}

func TestService_Get(t *testing.T) {
	repo := newFakeRepository(domain.NewIngredient{Name: "milk", MeasurementUnit: "ml"})
	svc := NewService(repo)

	item, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "milk", item.Name)

	_, err = svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
