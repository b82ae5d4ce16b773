package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgNotAuthenticated      = "Authentication credentials were not provided"
)

// HTTP headers and content types
const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderLocation           = "Location"
	ContentTypeJSON          = "application/json"
	AttachmentFormat         = "attachment; filename=%q"
)

// Query parameters
const (
	QueryLimit            = "limit"
	QueryPage             = "page"
	QueryName             = "name"
	QueryAuthor           = "author"
	QueryIsFavorited      = "is_favorited"
	QueryIsInShoppingCart = "is_in_shopping_cart"
	QueryRecipesLimit     = "recipes_limit"
	QueryFormat           = "format"
	PathID                = "id"
	PathCode              = "code"
)

// Operation names used in logs
const (
	OpRegister         = "Register user"
	OpListUsers        = "List users"
	OpGetUser          = "Get user"
	OpSetPassword      = "Set password"
	OpSetAvatar        = "Set avatar"
	OpDeleteAvatar     = "Delete avatar"
	OpLogin            = "Login"
	OpListIngredients  = "List ingredients"
	OpGetIngredient    = "Get ingredient"
	OpListRecipes      = "List recipes"
	OpCreateRecipe     = "Create recipe"
	OpGetRecipe        = "Get recipe"
	OpUpdateRecipe     = "Update recipe"
	OpDeleteRecipe     = "Delete recipe"
	OpShortLink        = "Get short link"
	OpResolveShortLink = "Resolve short link"
	OpCollectionAdd    = "Add to %s"
	OpCollectionRemove = "Remove from %s"
	OpDownloadCart     = "Download shopping list"
	OpListFollowed     = "List subscriptions"
	OpSubscribe        = "Subscribe"
	OpUnsubscribe      = "Unsubscribe"
)
