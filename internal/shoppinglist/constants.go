package shoppinglist

// Format selects the rendered document type
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
)

// Document names and content types
const (
	FilenameText    = "shopping_list.txt"
	FilenameCSV     = "shopping_list.csv"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// Text rendering
const (
	TextTitle          = "Shopping list"
	TextDateLayout     = "2006-01-02"
	TextRecipesHeading = "Recipes:"
	TextItemFormat     = "%d. %s (%s) — %d\n"
	TextRecipeFormat   = "- %s (%d min)\n"
)

// CSVHeader is the first row of the CSV document
var CSVHeader = []string{"name", "measurement_unit", "amount"}

// DefaultLanguage collates ingredient names when none is configured
const DefaultLanguage = "ru"

// Error messages
const (
	ErrMsgLoadCartFailed = "failed to load shopping cart: %w"
	ErrMsgRenderFailed   = "failed to render shopping list: %w"
)
