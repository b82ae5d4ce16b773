package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Passwords
// ============================================================================

// DefaultHashCost is the bcrypt work factor for stored passwords
const DefaultHashCost = bcrypt.DefaultCost

// ============================================================================
// Messages
// ============================================================================

// Validation messages
const (
	MsgFieldRequired    = "This field is required"
	MsgInvalidEmail     = "Invalid email format"
	MsgInvalidUsername  = "Letters, digits and @/./+/-/_ only"
	MsgReservedUsername = "This username is reserved"
	MsgPasswordLength   = "Must be between %d and %d characters"
	MsgSamePassword     = "New password must differ from the current one"
)

// ReservedUsernames cannot be registered because they collide with routes
var ReservedUsernames = map[string]bool{
	"me": true,
}

// Log messages
const (
	LogMsgUserRegistered  = "User registered"
	LogMsgLoginFailed     = "Login failed"
	LogMsgPasswordChanged = "Password changed"
	LogMsgAvatarCleanup   = "Failed to remove previous avatar"
)
