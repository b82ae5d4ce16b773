package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names declared in migrations/0001_initial_schema.sql
const (
	ConstraintUsersEmail         = "users_email_key"
	ConstraintUsersUsername      = "users_username_key"
	ConstraintRecipeIngredientFK = "recipe_ingredients_ingredient_id_fkey"
	ConstraintRecipeIngredientPK = "recipe_ingredients_pkey"
	ConstraintSelfSubscription   = "prevent_self_subscription"
	ConstraintSubscriptionAuthor = "subscriptions_author_id_fkey"
	ConstraintIngredientNameUnit = "unique_ingredient_name_unit"
)

// Collection tables keyed by domain.CollectionKind
const (
	TableFavoriteRecipes = "favorite_recipes"
	TableShoppingCart    = "shopping_cart"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgUnknownCollection         = "unknown collection"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
