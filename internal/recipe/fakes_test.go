package recipe

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// fakeRecipeRepository stores recipes in memory
type fakeRecipeRepository struct {
	mu        sync.Mutex
	recipes   map[int64]*domain.Recipe
	catalog   map[int64]domain.Ingredient
	nextID    int64
	failWrite error
}

func newFakeRecipeRepository(catalog ...domain.Ingredient) *fakeRecipeRepository {
	r := &fakeRecipeRepository{
		recipes: make(map[int64]*domain.Recipe),
		catalog: make(map[int64]domain.Ingredient),
	}
	for _, item := range catalog {
		r.catalog[item.ID] = item
	}
	return r
}

func (r *fakeRecipeRepository) lines(lines []domain.IngredientLine) []domain.RecipeIngredient {
	out := make([]domain.RecipeIngredient, len(lines))
	for i, line := range lines {
		item := r.catalog[line.IngredientID]
		out[i] = domain.RecipeIngredient{
			IngredientID:    line.IngredientID,
			Name:            item.Name,
			MeasurementUnit: item.MeasurementUnit,
			Amount:          line.Amount,
		}
	}
	return out
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	r.nextID++
	recipe.ID = r.nextID
	stored := *recipe
	stored.Ingredients = r.lines(lines)
	r.recipes[stored.ID] = &stored
	return nil
}

func (r *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *domain.Recipe, lines []domain.IngredientLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	if _, ok := r.recipes[recipe.ID]; !ok {
		return domain.ErrRecipeNotFound
	}
	stored := *recipe
	stored.Ingredients = r.lines(lines)
	r.recipes[stored.ID] = &stored
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return nil
}

func (r *fakeRecipeRepository) GetRecipe(_ context.Context, id int64) (*domain.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	found := *recipe
	return &found, nil
}

func (r *fakeRecipeRepository) GetRecipeSummary(ctx context.Context, id int64) (*domain.RecipeSummary, error) {
	recipe, err := r.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeSummary{ID: recipe.ID, Name: recipe.Name, Image: recipe.Image, CookingTime: recipe.CookingTime}, nil
}

func (r *fakeRecipeRepository) GetRecipeView(ctx context.Context, _ int64, id int64) (*domain.RecipeView, error) {
	recipe, err := r.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.RecipeView{Recipe: *recipe, Author: domain.UserProfile{User: domain.User{ID: recipe.AuthorID}}}, nil
}

func (r *fakeRecipeRepository) ListRecipeViews(_ context.Context, filter domain.RecipeFilter) (*domain.RecipePage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var views []domain.RecipeView
	for _, recipe := range r.recipes {
		if filter.AuthorID != nil && recipe.AuthorID != *filter.AuthorID {
			continue
		}
		views = append(views, domain.RecipeView{Recipe: *recipe})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	count := len(views)
	start := min(filter.Page.Offset, count)
	end := min(start+filter.Page.Limit, count)
	return &domain.RecipePage{Count: count, Results: views[start:end]}, nil
}

// fakeIngredientRepository answers lookups from a fixed catalog
type fakeIngredientRepository struct {
	catalog []domain.Ingredient
	err     error
}

func (f *fakeIngredientRepository) SearchIngredients(context.Context, string) ([]domain.Ingredient, error) {
	return f.catalog, f.err
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id int64) (*domain.Ingredient, error) {
	for _, item := range f.catalog {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrIngredientNotFound
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(_ context.Context, ids []int64) ([]domain.Ingredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Ingredient
	for _, item := range f.catalog {
		for _, id := range ids {
			if item.ID == id {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (f *fakeIngredientRepository) InsertIngredients(context.Context, []domain.NewIngredient) (int, error) {
	return 0, errors.New("not supported")
}

// fakeImageStore records saved and deleted paths
type fakeImageStore struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeImageStore) Save(_ context.Context, dir string, img []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	stored := dir + "/" + string(img) + ".jpg"
	f.saved = append(f.saved, stored)
	return stored, nil
}

func (f *fakeImageStore) Delete(_ context.Context, stored string) error {
	f.deleted = append(f.deleted, stored)
	return nil
}

func (f *fakeImageStore) URL(stored string) string {
	return "/media/" + stored
}
