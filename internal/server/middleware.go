package server

import (
	"context"
	"log"
	"net/http"
	"strings"
)

type ctxKey string

const userIDContextKey ctxKey = "userID"

// requireAuth gates protected routes behind a bearer session token. Every
// rejection looks the same to the client; the reason only goes to the log.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		userID, err := s.Credentials.Authenticate(r.Context(), token)
		if err != nil {
			log.Printf("auth: rejected request to %s: %v", r.URL.Path, err)
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

func userIDFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(userIDContextKey).(string); ok {
		return val
	}
	return ""
}
