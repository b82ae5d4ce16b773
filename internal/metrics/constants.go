package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "security_events_total"
)

// Business metric names
const (
	MetricNameRecipesCreated        = "recipes_created_total"
	MetricNameRecipesUpdated        = "recipes_updated_total"
	MetricNameRecipesDeleted        = "recipes_deleted_total"
	MetricNameCollectionChanges     = "collection_changes_total"
	MetricNameShoppingListsRendered = "shopping_lists_rendered_total"
	MetricNameShoppingListItems     = "shopping_list_items"
	MetricNameSubscriptionChanges   = "subscription_changes_total"
	MetricNameUsersRegistered       = "users_registered_total"
	MetricNameLoginAttempts         = "login_attempts_total"
	MetricNameImagesStored          = "images_stored_total"
	MetricNameUserCacheLookups      = "user_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Rejected tokens and requests blocked by the activity detector"
)

// Business metric help text
const (
	HelpTextRecipesCreated        = "Total number of recipes published"
	HelpTextRecipesUpdated        = "Total number of recipe edits"
	HelpTextRecipesDeleted        = "Total number of recipes deleted"
	HelpTextCollectionChanges     = "Total number of favorites and shopping cart changes"
	HelpTextShoppingListsRendered = "Total number of shopping list documents rendered"
	HelpTextShoppingListItems     = "Number of aggregated items per shopping list"
	HelpTextSubscriptionChanges   = "Total number of follow and unfollow operations"
	HelpTextUsersRegistered       = "Total number of registered accounts"
	HelpTextLoginAttempts         = "Total number of token login attempts"
	HelpTextImagesStored          = "Total number of images written to the media store"
	HelpTextUserCacheLookups      = "Total number of user cache lookups"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelCollection = "collection"
	LabelAction     = "action"
	LabelFormat     = "format"
	LabelResult     = "result"
	LabelDirectory  = "directory"
	LabelEvent      = "event"
)

// Label values
const (
	ActionAdd    = "add"
	ActionRemove = "remove"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	EventFailedAuth     = "failed_auth"
	EventRequestBlocked = "request_blocked"

	// PathUnmatched labels requests no route matched, keeping cardinality bounded
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ShoppingListItemBuckets covers lists from a single item to a large weekly shop
var ShoppingListItemBuckets = []float64{1, 5, 10, 20, 40, 80, 160}
