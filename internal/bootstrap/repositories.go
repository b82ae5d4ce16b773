package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/database/postgres"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User         repository.User
	Ingredient   repository.Ingredient
	Recipe       repository.Recipe
	Collection   repository.Collection
	ShoppingCart repository.ShoppingCart
	Subscription repository.Subscription
}

// InitializeRepositories creates all repository implementations on dbPool.
// Favorites and the shopping cart share one postgres repository.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	collections := postgres.NewCollectionRepository(dbPool)
	return &Repositories{
		User:         postgres.NewUserRepository(dbPool),
		Ingredient:   postgres.NewIngredientRepository(dbPool),
		Recipe:       postgres.NewRecipeRepository(dbPool),
		Collection:   collections,
		ShoppingCart: collections,
		Subscription: postgres.NewSubscriptionRepository(dbPool),
	}
}
