package config

import "time"

// Defaults applied when the corresponding variable is not set
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "foodgram"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultTokenTTL = 7 * 24 * time.Hour

	DefaultMediaRoot     = "media"
	DefaultMediaURL      = "/media/"
	DefaultPublicBaseURL = "http://localhost:8080"

	DefaultRateLimitRequests = 300
	DefaultRateLimitWindow   = time.Minute

	DefaultUserCacheSize = 1000
	DefaultUserCacheTTL  = 5 * time.Minute

	DefaultShoppingListLanguage = "ru"
)

// Configuration file paths
const (
	ConfigPathIngredientsSchema = "configs/schemas/ingredients.schema.json"
	ConfigPathIngredients       = "data/ingredients.json"
)
