package subscription

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

type edge struct{ user, author int64 }

// fakeRepository is an in-memory follow graph with per-author recipe lists
type fakeRepository struct {
	mu      sync.Mutex
	edges   map[edge]bool
	recipes map[int64][]domain.RecipeSummary
	users   map[int64]domain.User
}

func newFakeRepository(users ...domain.User) *fakeRepository {
	r := &fakeRepository{
		edges:   make(map[edge]bool),
		recipes: make(map[int64][]domain.RecipeSummary),
		users:   make(map[int64]domain.User),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepository) Subscribe(_ context.Context, userID, authorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if userID == authorID {
		return domain.ErrSelfSubscription
	}
	if r.edges[edge{userID, authorID}] {
		return domain.ErrAlreadySubscribed
	}
	r.edges[edge{userID, authorID}] = true
	return nil
}

func (r *fakeRepository) Unsubscribe(_ context.Context, userID, authorID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existed := r.edges[edge{userID, authorID}]
	delete(r.edges, edge{userID, authorID})
	return existed, nil
}

func (r *fakeRepository) IsSubscribed(_ context.Context, userID, authorID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.edges[edge{userID, authorID}], nil
}

func (r *fakeRepository) SubscribedAuthors(_ context.Context, userID int64, ids []int64) (map[int64]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]bool)
	for _, id := range ids {
		if r.edges[edge{userID, id}] {
			out[id] = true
		}
	}
	return out, nil
}

func (r *fakeRepository) ListSubscriptions(_ context.Context, userID int64, page domain.Page) ([]domain.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var authors []domain.User
	for e := range r.edges {
		if e.user == userID {
			authors = append(authors, r.users[e.author])
		}
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })
	count := len(authors)
	start := min(page.Offset, count)
	end := min(start+page.Limit, count)
	return authors[start:end], count, nil
}

func (r *fakeRepository) GetAuthorRecipes(_ context.Context, ids []int64, limit *int) (map[int64][]domain.RecipeSummary, error) {
	out := make(map[int64][]domain.RecipeSummary)
	for _, id := range ids {
		list := r.recipes[id]
		if limit != nil && len(list) > *limit {
			list = list[:*limit]
		}
		if len(list) > 0 {
			out[id] = list
		}
	}
	return out, nil
}

func (r *fakeRepository) CountAuthorRecipes(_ context.Context, ids []int64) (map[int64]int, error) {
	out := make(map[int64]int)
	for _, id := range ids {
		if n := len(r.recipes[id]); n > 0 {
			out[id] = n
		}
	}
	return out, nil
}

// fakeUsers resolves users from the same fixture
type fakeUsers struct{ repo *fakeRepository }

func (f fakeUsers) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.repo.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (fakeUsers) CreateUser(context.Context, *domain.User) error { return nil }
func (fakeUsers) GetUserByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (fakeUsers) ListUsers(context.Context, domain.Page) ([]domain.User, int, error) {
	return nil, 0, nil
}
func (fakeUsers) UpdatePasswordHash(context.Context, int64, string) error { return nil }
func (fakeUsers) UpdateAvatar(context.Context, int64, *string) error      { return nil }

const (
	reader = int64(1)
	chef   = int64(2)
	baker  = int64(3)
)

func newFixture() (Service, *fakeRepository) {
	repo := newFakeRepository(
		domain.User{ID: reader, Username: "reader"},
		domain.User{ID: chef, Username: "chef"},
		domain.User{ID: baker, Username: "baker"},
	)
	repo.recipes[chef] = []domain.RecipeSummary{{ID: 30, Name: "Soup"}, {ID: 20, Name: "Stew"}, {ID: 10, Name: "Salad"}}
	return NewService(repo, fakeUsers{repo}), repo
}

func intPtr(v int) *int { return &v }

func TestFollow(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	feed, err := svc.Follow(ctx, reader, chef, intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, "chef", feed.Username)
	assert.True(t, feed.IsSubscribed)
	assert.Len(t, feed.Recipes, 2)
	assert.Equal(t, 3, feed.RecipesCount)

	_, err = svc.Follow(ctx, reader, chef, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.ErrorIs(t, err, domain.ErrConflict)

	subscribed, err := svc.IsSubscribed(ctx, reader, chef)
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestFollow_Rejections(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()

	_, err := svc.Follow(ctx, chef, chef, nil)
	assert.ErrorIs(t, err, domain.ErrSelfSubscription)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Follow(ctx, reader, 404, nil)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Follow(ctx, reader, chef, intPtr(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Follow(ctx, 0, chef, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, repo.edges)
}

func TestUnfollow(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	err := svc.Unfollow(ctx, reader, chef)
	assert.ErrorIs(t, err, domain.ErrNotSubscribed)
	assert.ErrorIs(t, err, domain.ErrNotPresent)

	_, err = svc.Follow(ctx, reader, chef, nil)
	require.NoError(t, err)
	require.NoError(t, svc.Unfollow(ctx, reader, chef))

	assert.ErrorIs(t, svc.Unfollow(ctx, reader, reader), domain.ErrSelfSubscription)
	assert.ErrorIs(t, svc.Unfollow(ctx, reader, 404), domain.ErrUserNotFound)
}

func TestList(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()

	for _, author := range []int64{chef, baker} {
		_, err := svc.Follow(ctx, reader, author, nil)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, reader, nil, domain.NewPage(10, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.Len(t, page.Results[0].Recipes, 3, "nil limit returns every recipe")
	assert.NotNil(t, page.Results[1].Recipes, "authors without recipes get an empty list")
	assert.Zero(t, page.Results[1].RecipesCount)

	page, err = svc.List(ctx, reader, intPtr(0), domain.NewPage(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, baker, page.Results[0].ID)
	assert.Empty(t, page.Results[0].Recipes)
}

func TestSubscribedAuthors(t *testing.T) {
	svc, _ := newFixture()
	ctx := context.Background()
	_, err := svc.Follow(ctx, reader, baker, nil)
	require.NoError(t, err)

	followed, err := svc.SubscribedAuthors(ctx, reader, []int64{chef, baker})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{baker: true}, followed)

	followed, err = svc.SubscribedAuthors(ctx, 0, []int64{chef, baker})
	require.NoError(t, err)
	assert.Empty(t, followed)
}
