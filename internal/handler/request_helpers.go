package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req LoginRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Info(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// currentUserID returns the authenticated user, or 0 for anonymous requests
func currentUserID(r *http.Request) int64 {
	return auth.UserIDFromContext(r.Context())
}

// pathID parses a positive integer URL parameter. A malformed id is a 404
// because no resource can live at that path.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusNotFound, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// falling back to defaultValue when it is absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// optionalIntParam parses a non-negative integer query parameter. It returns
// nil when the parameter is absent.
func optionalIntParam(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{name: fmt.Sprintf(ErrMsgInvalidQueryParam, name)},
		})
		return nil, false
	}
	return &v, true
}

// pageParams reads limit and page. Missing values fall back to domain defaults.
func pageParams(w http.ResponseWriter, r *http.Request) (domain.Page, bool) {
	limit, ok := optionalIntParam(w, r, QueryLimit)
	if !ok {
		return domain.Page{}, false
	}
	page, ok := optionalIntParam(w, r, QueryPage)
	if !ok {
		return domain.Page{}, false
	}

	l, p := 0, 1
	if limit != nil {
		l = *limit
	}
	if page != nil {
		p = *page
	}
	return domain.NewPage(l, p), true
}

// flagParam reads a 0/1 style boolean filter
func flagParam(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "True":
		return true
	}
	return false
}

// LogRequestFields logs the identifiers a mutation acts on at debug level.
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
