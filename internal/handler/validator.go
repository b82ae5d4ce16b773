package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Foodgram_Go/internal/validation"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator with the domain tags and
// JSON field names
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := validation.RegisterRules(v); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON path, e.g. "ingredients[0].amount"
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, rest, ok := strings.Cut(e.Namespace(), "."); ok {
			field = rest
		}
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case validation.TagUsername:
			errs[field] = "Letters, digits and @/./+/-/_ only"
		case validation.TagCookingTime:
			errs[field] = validation.CookingTimeMessage()
		case validation.TagAmount:
			errs[field] = validation.AmountMessage()
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			if e.Kind() == reflect.Slice {
				errs[field] = fmt.Sprintf("Must contain at least %s item(s)", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
			}
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "unique":
			errs[field] = "Must not contain duplicates"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
