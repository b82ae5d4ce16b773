package ingredient

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read ingredient catalog: %w"
	ErrMsgParseCatalogFailed = "failed to parse ingredient catalog: %w"
)

// Validation error messages
const (
	ErrMsgCatalogEmpty     = "no ingredients defined"
	ErrFmtEmptyField       = "%w: ingredient at index %d has empty %s"
	ErrFmtDuplicateEntry   = "%w: '%s (%s)' appears more than once"
	ErrMsgInsertFailed     = "failed to insert ingredients: %w"
	ErrMsgSearchFailed     = "failed to search ingredients: %w"
	ErrMsgGetFailed        = "failed to get ingredient: %w"
	ErrMsgIngredientLookup = "failed to look up ingredients: %w"
)

// Log messages
const (
	LogMsgSyncCompleted = "Ingredient catalog sync completed"
	LogMsgCatalogLoaded = "Ingredient catalog loaded"
)
