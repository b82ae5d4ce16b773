package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err once and writes the mapped status. Validation
// failures carry their field so clients can highlight it.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Info(opName+" rejected", "status", status, "reason", err.Error())
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		respondJSON(w, status, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{verr.Field: verr.Message},
		})
		return
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError       = "Authentication credentials were not provided or are invalid"
	ErrMsgForbiddenError        = "You do not have permission to perform this action"
	ErrMsgResourceNotFoundError = "Resource not found"

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgRecipeNotFoundError     = "Recipe not found"
	ErrMsgIngredientNotFoundError = "Ingredient not found"
	ErrMsgInvalidCredentialsError = "Unable to log in with provided credentials"
	ErrMsgEmptyShoppingCartError  = "Shopping cart is empty"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Specific errors are checked before the categories they wrap.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrMsgIngredientNotFoundError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrEmptyShoppingCart):
		return http.StatusBadRequest, ErrMsgEmptyShoppingCartError
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNotPresent),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, userFacingDetail(err)
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgAuthFailedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// userFacingDetail strips the category prefix from errors built as
// "<category>: <detail>"
func userFacingDetail(err error) string {
	msg := err.Error()
	for _, category := range []error{domain.ErrConflict, domain.ErrNotPresent, domain.ErrInvalidInput} {
		if detail, ok := strings.CutPrefix(msg, category.Error()+": "); ok && detail != "" {
			return detail
		}
	}
	return msg
}
