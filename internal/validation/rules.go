package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Recipe and user limits. Request structs and services both read these.
const (
	MinCookingTime      = 1
	MaxCookingTime      = 32000
	MinAmount           = 1
	MaxAmount           = 32000
	MaxRecipeNameLength = 256

	MaxUsernameLength = 150
	MaxNameLength     = 150
	MaxEmailLength    = 254
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Custom validator tags registered by RegisterRules
const (
	TagCookingTime = "cooking_time"
	TagAmount      = "amount"
	TagUsername    = "username"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// RegisterRules installs the domain tags on v
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagCookingTime: func(fl validator.FieldLevel) bool {
			return inRange(fl.Field().Int(), MinCookingTime, MaxCookingTime)
		},
		TagAmount: func(fl validator.FieldLevel) bool {
			return inRange(fl.Field().Int(), MinAmount, MaxAmount)
		},
		TagUsername: func(fl validator.FieldLevel) bool {
			return ValidUsername(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// CookingTimeMessage and AmountMessage describe the accepted ranges
func CookingTimeMessage() string {
	return fmt.Sprintf("Must be between %d and %d", MinCookingTime, MaxCookingTime)
}

func AmountMessage() string {
	return fmt.Sprintf("Must be between %d and %d", MinAmount, MaxAmount)
}

func ValidCookingTime(minutes int) bool {
	return inRange(int64(minutes), MinCookingTime, MaxCookingTime)
}

func ValidAmount(amount int) bool {
	return inRange(int64(amount), MinAmount, MaxAmount)
}

// ValidUsername reports whether name is non-empty, fits the length limit and
// uses only letters, digits and . @ + - _
func ValidUsername(name string) bool {
	return name != "" && len(name) <= MaxUsernameLength && usernamePattern.MatchString(name)
}

func inRange(v, lo, hi int64) bool {
	return v >= lo && v <= hi
}
