package middleware

import (
	"context"
	"net/http"
	"strings"

	"cricket_server/services"

	"github.com/gorilla/mux"
)

type contextKey string

const captainIDKey contextKey = "captain_id"

// Auth validates the bearer token and stores the captain id in the request
// context. Handlers behind it read the id with CaptainID.
func Auth(auth *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"error": "missing authorization header"}`, http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				http.Error(w, `{"error": "invalid authorization header format"}`, http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, `{"error": "invalid or expired token"}`, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), captainIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CaptainID returns the authenticated captain id, or "" for an
// unauthenticated request.
func CaptainID(r *http.Request) string {
	if id, ok := r.Context().Value(captainIDKey).(string); ok {
		return id
	}
	return ""
}
