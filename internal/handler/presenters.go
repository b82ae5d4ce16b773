package handler

import (
	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ImageURLer turns a stored image reference into a public URL
type ImageURLer interface {
	URL(stored string) string
}

// UserResponse is the public user payload
type UserResponse struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

// UserPageResponse is a paginated user listing
type UserPageResponse struct {
	Count   int            `json:"count"`
	Results []UserResponse `json:"results"`
}

// RecipeSummaryResponse is the short recipe form
type RecipeSummaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeResponse is the full recipe payload
type RecipeResponse struct {
	ID               int64                     `json:"id"`
	Author           UserResponse              `json:"author"`
	Ingredients      []domain.RecipeIngredient `json:"ingredients"`
	IsFavorited      bool                      `json:"is_favorited"`
	IsInShoppingCart bool                      `json:"is_in_shopping_cart"`
	Name             string                    `json:"name"`
	Image            string                    `json:"image"`
	Text             string                    `json:"text"`
	CookingTime      int                       `json:"cooking_time"`
}

// RecipePageResponse is a paginated recipe listing
type RecipePageResponse struct {
	Count   int              `json:"count"`
	Results []RecipeResponse `json:"results"`
}

// AuthorFeedResponse is a followed author with a preview of their recipes
type AuthorFeedResponse struct {
	UserResponse
	Recipes      []RecipeSummaryResponse `json:"recipes"`
	RecipesCount int                     `json:"recipes_count"`
}

// AuthorFeedPageResponse is a paginated subscription listing
type AuthorFeedPageResponse struct {
	Count   int                  `json:"count"`
	Results []AuthorFeedResponse `json:"results"`
}

// presenter converts domain values into response payloads
type presenter struct {
	images ImageURLer
}

func (p presenter) imageURL(stored string) string {
	if stored == "" {
		return ""
	}
	return p.images.URL(stored)
}

func (p presenter) user(u domain.UserProfile) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: u.IsSubscribed,
	}
	if u.Avatar != nil {
		url := p.imageURL(*u.Avatar)
		resp.Avatar = &url
	}
	return resp
}

func (p presenter) userPage(page *domain.UserPage) UserPageResponse {
	results := make([]UserResponse, len(page.Results))
	for i, u := range page.Results {
		results[i] = p.user(u)
	}
	return UserPageResponse{Count: page.Count, Results: results}
}

func (p presenter) summary(s domain.RecipeSummary) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Image:       p.imageURL(s.Image),
		CookingTime: s.CookingTime,
	}
}

func (p presenter) recipe(v *domain.RecipeView) RecipeResponse {
	ingredients := v.Ingredients
	if ingredients == nil {
		ingredients = []domain.RecipeIngredient{}
	}
	return RecipeResponse{
		ID:               v.ID,
		Author:           p.user(v.Author),
		Ingredients:      ingredients,
		IsFavorited:      v.IsFavorited,
		IsInShoppingCart: v.IsInShoppingCart,
		Name:             v.Name,
		Image:            p.imageURL(v.Image),
		Text:             v.Text,
		CookingTime:      v.CookingTime,
	}
}

func (p presenter) recipePage(page *domain.RecipePage) RecipePageResponse {
	results := make([]RecipeResponse, len(page.Results))
	for i := range page.Results {
		results[i] = p.recipe(&page.Results[i])
	}
	return RecipePageResponse{Count: page.Count, Results: results}
}

func (p presenter) authorFeed(f domain.AuthorFeed) AuthorFeedResponse {
	recipes := make([]RecipeSummaryResponse, len(f.Recipes))
	for i, r := range f.Recipes {
		recipes[i] = p.summary(r)
	}
	return AuthorFeedResponse{
		UserResponse: p.user(f.UserProfile),
		Recipes:      recipes,
		RecipesCount: f.RecipesCount,
	}
}

func (p presenter) authorFeedPage(page *domain.AuthorFeedPage) AuthorFeedPageResponse {
	results := make([]AuthorFeedResponse, len(page.Results))
	for i, f := range page.Results {
		results[i] = p.authorFeed(f)
	}
	return AuthorFeedPageResponse{Count: page.Count, Results: results}
}
