package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/minimindteam/Dash/internal/handler"
	"github.com/minimindteam/Dash/internal/repository/sqlite"
	"github.com/minimindteam/Dash/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0"

func newTestAuth(t *testing.T) *service.AuthService {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	auth := service.NewAuthService(db.Users(), testJWTSecret, 4)
	if err := auth.EnsureAdmin(context.Background(), "admin@example.com", "password123"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	return auth
}

func loginToken(t *testing.T, auth *service.AuthService) string {
	t.Helper()
	pair, err := auth.Login(context.Background(), "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return pair.AccessToken
}

func TestRequireAuth_NoToken(t *testing.T) {
	auth := newTestAuth(t)

	h := handler.RequireAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	auth := newTestAuth(t)

	h := handler.RequireAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth := newTestAuth(t)
	token := loginToken(t, auth)

	var reached bool
	h := handler.RequireAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		sess := handler.SessionFromContext(r.Context())
		if sess == nil {
			t.Fatal("expected session in context")
		}
		if sess.Email != "admin@example.com" {
			t.Fatalf("unexpected session email %q", sess.Email)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !reached {
		t.Fatal("handler not reached with valid token")
	}
}

func TestOptionalAuth_ProceedsWithoutToken(t *testing.T) {
	auth := newTestAuth(t)

	var reached bool
	h := handler.OptionalAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if handler.SessionFromContext(r.Context()) != nil {
			t.Fatal("expected no session")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !reached {
		t.Fatal("handler not reached without token")
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := handler.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options: got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options: got %q", got)
	}
}
