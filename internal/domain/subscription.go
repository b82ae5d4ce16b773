package domain

// AuthorFeed is a followed author together with their most recent recipes.
type AuthorFeed struct {
	UserProfile
	Recipes      []RecipeSummary `json:"recipes"`
	RecipesCount int             `json:"recipes_count"`
}

// AuthorFeedPage is one page of followed authors.
type AuthorFeedPage struct {
	Count   int          `json:"count"`
	Results []AuthorFeed `json:"results"`
}
