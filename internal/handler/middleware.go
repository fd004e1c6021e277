package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext extracts the authenticated session from the request
// context. Returns nil if no session is authenticated.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// RequireAuth is middleware that protects routes requiring authentication.
// It reads the Bearer token from the Authorization header, validates the
// JWT, and injects the session into the request context. Returns 401 for
// unauthenticated requests.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := authenticateRequest(r, auth)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth is middleware that attempts to authenticate but does not
// block unauthenticated requests. If a valid token is present, the session
// is injected into context; otherwise the request proceeds without one.
func OptionalAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := authenticateRequest(r, auth)
		if err == nil && sess != nil {
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.Session, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, domain.ErrUnauthenticated
	}

	return auth.ValidateAccessToken(token)
}
