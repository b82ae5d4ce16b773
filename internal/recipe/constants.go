package recipe

// Short link settings
const (
	ShortLinkPrefix = "/s/"
	ShortLinkBase   = 36
	RecipePagePath  = "/recipes/"
)

// Error messages
const (
	ErrMsgCreateFailed     = "failed to create recipe: %w"
	ErrMsgUpdateFailed     = "failed to update recipe %d: %w"
	ErrMsgDeleteFailed     = "failed to delete recipe %d: %w"
	ErrMsgLoadFailed       = "failed to load recipe %d: %w"
	ErrMsgListFailed       = "failed to list recipes: %w"
	ErrMsgIngredientLookup = "failed to look up ingredients: %w"
	ErrMsgStoreImageFailed = "failed to store recipe image: %w"
)

// Validation messages
const (
	MsgNameRequired        = "This field is required"
	MsgNameTooLong         = "Must be at most %d characters"
	MsgTextRequired        = "This field is required"
	MsgImageRequired       = "This field is required"
	MsgIngredientsRequired = "At least one ingredient is required"
	MsgDuplicateIngredient = "Ingredient %d is listed more than once"
	MsgUnknownIngredient   = "Ingredient %d does not exist"
	MsgAmountOutOfRange    = "Amount of ingredient %d must be between %d and %d"
	MsgCookingTimeRange    = "Must be between %d and %d"
)

// Log messages
const (
	LogMsgRecipeCreated       = "Recipe created"
	LogMsgRecipeUpdated       = "Recipe updated"
	LogMsgRecipeDeleted       = "Recipe deleted"
	LogMsgImageCleanupFailed  = "Failed to remove recipe image"
	LogMsgForbiddenRecipeEdit = "Rejected edit of another author's recipe"
)
