package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgConflict     = "already exists"
	ErrMsgNotPresent   = "not present"
	ErrMsgForbidden    = "forbidden"
	ErrMsgUnauthorized = "unauthorized"

	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgInvalidCredentials = "invalid email or password"
	ErrMsgEmailTaken         = "email is already registered"
	ErrMsgUsernameTaken      = "username is already taken"
	ErrMsgWrongPassword      = "current password is incorrect"
	ErrMsgAvatarNotSet       = "avatar is not set"

	// Ingredient errors
	ErrMsgIngredientNotFound = "ingredient not found"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Collection errors
	ErrMsgAlreadyInFavorites    = "recipe is already in favorites"
	ErrMsgNotInFavorites        = "recipe is not in favorites"
	ErrMsgAlreadyInShoppingCart = "recipe is already in the shopping cart"
	ErrMsgNotInShoppingCart     = "recipe is not in the shopping cart"
	ErrMsgEmptyShoppingCart     = "shopping cart is empty"

	// Subscription errors
	ErrMsgSelfSubscription  = "cannot subscribe to yourself"
	ErrMsgAlreadySubscribed = "already subscribed to this author"
	ErrMsgNotSubscribed     = "not subscribed to this author"
)

// Category errors. Concrete errors below wrap one of these so handlers can map
// whole families to a status code with errors.Is.
var (
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrConflict     = errors.New(ErrMsgConflict)
	ErrNotPresent   = errors.New(ErrMsgNotPresent)
	ErrForbidden    = errors.New(ErrMsgForbidden)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
)

var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrEmailTaken         = fmt.Errorf("%w: %s", ErrConflict, ErrMsgEmailTaken)
	ErrUsernameTaken      = fmt.Errorf("%w: %s", ErrConflict, ErrMsgUsernameTaken)
	ErrWrongPassword      = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgWrongPassword)
	ErrAvatarNotSet       = fmt.Errorf("%w: %s", ErrNotPresent, ErrMsgAvatarNotSet)

	// Ingredient errors
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Collection errors
	ErrAlreadyInFavorites    = fmt.Errorf("%w: %s", ErrConflict, ErrMsgAlreadyInFavorites)
	ErrNotInFavorites        = fmt.Errorf("%w: %s", ErrNotPresent, ErrMsgNotInFavorites)
	ErrAlreadyInShoppingCart = fmt.Errorf("%w: %s", ErrConflict, ErrMsgAlreadyInShoppingCart)
	ErrNotInShoppingCart     = fmt.Errorf("%w: %s", ErrNotPresent, ErrMsgNotInShoppingCart)
	ErrEmptyShoppingCart     = errors.New(ErrMsgEmptyShoppingCart)

	// Subscription errors
	ErrSelfSubscription  = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgSelfSubscription)
	ErrAlreadySubscribed = fmt.Errorf("%w: %s", ErrConflict, ErrMsgAlreadySubscribed)
	ErrNotSubscribed     = fmt.Errorf("%w: %s", ErrNotPresent, ErrMsgNotSubscribed)
)

// ValidationError describes a single rejected field. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrMsgInvalidInput, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMsgInvalidInput, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
