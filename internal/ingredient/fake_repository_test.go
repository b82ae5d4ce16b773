package ingredient

import (
	"context"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// fakeRepository keeps the catalog in memory, keyed by name+unit
type fakeRepository struct {
	items  []domain.Ingredient
	err    error
	nextID int64
}

func newFakeRepository(seed ...domain.NewIngredient) *fakeRepository {
	r := &fakeRepository{}
	_, _ = r.InsertIngredients(context.Background(), seed)
	return r
}

func (r *fakeRepository) SearchIngredients(_ context.Context, prefix string) ([]domain.Ingredient, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Ingredient
	for _, item := range r.items {
		if strings.HasPrefix(strings.ToLower(item.Name), strings.ToLower(prefix)) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeRepository) GetIngredientByID(_ context.Context, id int64) (*domain.Ingredient, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrIngredientNotFound
}

func (r *fakeRepository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	var out []domain.Ingredient
	for _, id := range ids {
		if item, err := r.GetIngredientByID(ctx, id); err == nil {
			out = append(out, *item)
		}
	}
	return out, r.err
}

func (r *fakeRepository) InsertIngredients(_ context.Context, items []domain.NewIngredient) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	inserted := 0
	for _, n := range items {
		exists := false
		for _, item := range r.items {
			if item.Name == n.Name && item.MeasurementUnit == n.MeasurementUnit {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		r.nextID++
		r.items = append(r.items, domain.Ingredient{ID: r.nextID, Name: n.Name, MeasurementUnit: n.MeasurementUnit})
		inserted++
	}
	return inserted, nil
}
