package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/shoppinglist"
)

// staticURLs prefixes stored image paths like the file store does
type staticURLs struct{}

func (staticURLs) URL(stored string) string {
	return "http://testserver/media/" + stored
}

// withUser authenticates req as userID
func withUser(req *http.Request, userID int64) *http.Request {
	ctx := auth.WithClaims(req.Context(), &auth.Claims{UserID: userID, TokenID: "test-token"})
	return req.WithContext(ctx)
}

// withURLParams attaches chi route parameters as the router would
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, claims *auth.Claims) {
	m.Called(ctx, claims)
}

func (m *MockUserService) Get(ctx context.Context, viewerID, userID int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, viewerID int64, page domain.Page) (*domain.UserPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPage), args.Error(1)
}

func (m *MockUserService) SetPassword(ctx context.Context, userID int64, current, next string) error {
	args := m.Called(ctx, userID, current, next)
	return args.Error(0)
}

func (m *MockUserService) SetAvatar(ctx context.Context, userID int64, img []byte) (*domain.User, error) {
	args := m.Called(ctx, userID, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteAvatar(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockRecipeService mocks recipe.Service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, authorID int64, input domain.RecipeInput) (*domain.RecipeView, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, userID, recipeID int64, input domain.RecipeInput) (*domain.RecipeView, error) {
	args := m.Called(ctx, userID, recipeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockRecipeService) Get(ctx context.Context, viewerID, recipeID int64) (*domain.RecipeView, error) {
	args := m.Called(ctx, viewerID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, viewerID int64, filter domain.RecipeFilter) (*domain.RecipePage, error) {
	args := m.Called(ctx, viewerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipePage), args.Error(1)
}

func (m *MockRecipeService) ShortLink(ctx context.Context, recipeID int64) (string, error) {
	args := m.Called(ctx, recipeID)
	return args.String(0), args.Error(1)
}

func (m *MockRecipeService) ResolveShortLink(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

// MockCollectionService mocks collection.Service
type MockCollectionService struct {
	mock.Mock
	kind domain.CollectionKind
}

func (m *MockCollectionService) Kind() domain.CollectionKind {
	return m.kind
}

func (m *MockCollectionService) Add(ctx context.Context, userID, recipeID int64) (*domain.RecipeSummary, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeSummary), args.Error(1)
}

func (m *MockCollectionService) Remove(ctx context.Context, userID, recipeID int64) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

func (m *MockCollectionService) Contains(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

// MockShoppingListService mocks shoppinglist.Service
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) Build(ctx context.Context, userID int64) (*domain.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) Download(ctx context.Context, userID int64, format shoppinglist.Format) (*shoppinglist.Document, error) {
	args := m.Called(ctx, userID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shoppinglist.Document), args.Error(1)
}

// MockSubscriptionService mocks subscription.Service
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Follow(ctx context.Context, userID, authorID int64, recipesLimit *int) (*domain.AuthorFeed, error) {
	args := m.Called(ctx, userID, authorID, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorFeed), args.Error(1)
}

func (m *MockSubscriptionService) Unfollow(ctx context.Context, userID, authorID int64) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionService) List(ctx context.Context, userID int64, recipesLimit *int, page domain.Page) (*domain.AuthorFeedPage, error) {
	args := m.Called(ctx, userID, recipesLimit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorFeedPage), args.Error(1)
}

func (m *MockSubscriptionService) IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionService) SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

// MockIngredientService mocks ingredient.Service
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) Search(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockIngredientService) Get(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}
