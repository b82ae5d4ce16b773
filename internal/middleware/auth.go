// Package middleware holds request authentication shared by the API routes.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Authenticate resolves the Authorization header into claims on the request
// context. Requests without the header continue anonymously; a malformed or
// rejected token ends the request with 401. onFailure, when set, is told about
// every rejected request.
func Authenticate(tokens auth.TokenService, onFailure func(*http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(auth.HeaderAuthorization)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromContext(r.Context())
			token, ok := auth.ExtractToken(header)
			if !ok {
				log.Debug(LogMsgMalformedToken, "path", r.URL.Path)
				reject(w, r, onFailure, ErrMsgInvalidToken)
				return
			}

			claims, err := tokens.Verify(r.Context(), token)
			if err != nil {
				log.Info(LogMsgTokenRejected, "path", r.URL.Path)
				reject(w, r, onFailure, ErrMsgInvalidToken)
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			ctx = logger.WithUserID(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. It must run after Authenticate.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.ClaimsFromContext(r.Context()); !ok {
			writeUnauthorized(w, ErrMsgNotAuthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func reject(w http.ResponseWriter, r *http.Request, onFailure func(*http.Request), msg string) {
	if onFailure != nil {
		onFailure(r)
	}
	writeUnauthorized(w, msg)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.Header().Set(HeaderWWWAuthenticate, auth.SchemeToken)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
