package recipe

import (
	"errors"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// isDomainError reports whether err already carries a meaning handlers map to
// a client status, so it should be returned untouched
func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrRecipeNotFound) ||
		errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrConflict)
}
