package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"loveconnect_server/utils"

	"github.com/gorilla/mux"
)

type contextKey struct{}

// WithUserID stores the authenticated viewer id in the request context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the authenticated viewer id, or "" outside RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// RequireAuth resolves the bearer credential to a viewer id. Handlers behind
// it can trust middleware.UserID without re-checking the token.
func RequireAuth(secret []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			userID, err := utils.GetUserIDFromToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil || userID == "" {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Missing or invalid credentials."})
}
