package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/collection"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/ingredient"
	"github.com/osse101/Foodgram_Go/internal/media"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/server"
	"github.com/osse101/Foodgram_Go/internal/shoppinglist"
	"github.com/osse101/Foodgram_Go/internal/subscription"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// InitializeServices builds the service graph on top of repos
func InitializeServices(cfg *config.Config, repos *Repositories) (server.Services, error) {
	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedCreateTokens, err)
	}

	if err := os.MkdirAll(cfg.MediaRoot, DirPermission); err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedCreateMediaRoot, err)
	}
	images := media.NewFileStore(cfg.MediaRoot, cfg.MediaURL)

	subscriptions := subscription.NewService(repos.Subscription, repos.User)
	users := user.NewService(repos.User, subscriptions, tokens, images, user.CacheConfig{
		Size: cfg.UserCacheSize,
		TTL:  cfg.UserCacheTTL,
	})

	svc := server.Services{
		Users:         users,
		Tokens:        tokens,
		Ingredients:   ingredient.NewService(repos.Ingredient),
		Recipes:       recipe.NewService(repos.Recipe, repos.Ingredient, images, cfg.PublicBaseURL),
		Favorites:     collection.NewService(domain.CollectionFavorites, repos.Collection, repos.Recipe),
		ShoppingCart:  collection.NewService(domain.CollectionShoppingCart, repos.Collection, repos.Recipe),
		ShoppingList:  shoppinglist.NewService(repos.ShoppingCart, cfg.ShoppingListLanguage),
		Subscriptions: subscriptions,
		Images:        images,
	}
	slog.Info(LogMsgServicesInitialized, "media_root", images.Root())
	return svc, nil
}

// ServerConfig extracts the HTTP settings from the application config
func ServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Port:               cfg.Port,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRequests:  cfg.RateLimitRequests,
		RateLimitWindow:    cfg.RateLimitWindow,
		MediaRoot:          cfg.MediaRoot,
		MediaURL:           cfg.MediaURL,
	}
}
