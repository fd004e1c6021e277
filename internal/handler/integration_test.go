package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minimindteam/Dash/internal/handler"
	"github.com/minimindteam/Dash/internal/repository/sqlite"
	"github.com/minimindteam/Dash/internal/service"
)

// newTestServer wires the full stack against a temp database, exactly as
// main does, and returns the mux plus a valid admin access token.
func newTestServer(t *testing.T) (http.Handler, string) {
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

	images := service.NewImageService(db.Images(), db.FileStore(), "http://localhost:8080")

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:      auth,
		HomePage:  service.NewHomePageService(db.HomePage(), images),
		Images:    images,
		Messages:  service.NewMessageService(db.Messages()),
		Orders:    service.NewOrderService(db.Orders()),
		Team:      service.NewTeamService(db.Team()),
		Reviews:   service.NewReviewService(db.Reviews(), db.ReviewsStats()),
		Portfolio: service.NewPortfolioService(db.Portfolio(), db.PortfolioCategories()),
		Catalog:   service.NewCatalogService(db.Services(), db.Packages()),
		Contact:   service.NewContactService(db.ContactInfo()),
	})

	return handler.SecurityHeaders(mux), loginToken(t, auth)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestIntegration_LoginFlow(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "admin@example.com", "password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	tokens := decode[map[string]string](t, rec)
	if tokens["access_token"] == "" || tokens["refresh_token"] == "" {
		t.Fatal("expected both tokens in response")
	}

	rec = doJSON(t, h, http.MethodPost, "/api/refresh", "", map[string]string{
		"refresh_token": tokens["refresh_token"],
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokens["access_token"])
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", rec2.Code)
	}
}

func TestIntegration_HomePageSaveAndFetch(t *testing.T) {
	h, token := newTestServer(t)

	// Anonymous fetch of an untouched site returns an empty aggregate.
	rec := doJSON(t, h, http.MethodGet, "/api/home-page", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous get: expected 200, got %d", rec.Code)
	}

	// Saving requires authentication.
	draft := map[string]any{
		"content": map[string]any{
			"hero_title": "We Build Brands",
			"cta_title":  "Start today",
		},
		"hero_images": []map[string]any{
			{"type": "url", "url": "https://cdn.example.com/a.jpg"},
		},
		"stats": []map[string]any{
			{"number": "120+", "label": "Projects", "icon": "Rocket"},
		},
		"services_preview": []map[string]any{
			{"title": "Branding", "description": "Identity work", "image": map[string]any{"type": "url", "url": "https://cdn.example.com/c.jpg"}},
		},
	}

	rec = doJSON(t, h, http.MethodPut, "/api/home-page", "", draft)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated save: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/home-page", token, draft)
	if rec.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/home-page", "", nil)
	page := decode[map[string]any](t, rec)
	content := page["content"].(map[string]any)
	if content["hero_title"] != "We Build Brands" {
		t.Fatalf("hero title not persisted: %v", content["hero_title"])
	}
	heroImages := page["hero_images"].([]any)
	if len(heroImages) != 1 {
		t.Fatalf("expected 1 hero image, got %d", len(heroImages))
	}
	first := heroImages[0].(map[string]any)
	if first["display_order"] != float64(1) {
		t.Fatalf("display order: got %v", first["display_order"])
	}

	// Per-item delete.
	statID := int64(page["stats"].([]any)[0].(map[string]any)["id"].(float64))
	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/home-page/stats/%d", statID), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete stat: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/home-page", "", nil)
	page = decode[map[string]any](t, rec)
	if len(page["stats"].([]any)) != 0 {
		t.Fatal("stat not deleted")
	}
}

func TestIntegration_HomePageSaveValidation(t *testing.T) {
	h, token := newTestServer(t)

	draft := map[string]any{
		"content": map[string]any{},
		"stats": []map[string]any{
			{"number": "120+", "label": "Projects", "icon": "NotAnIcon"},
		},
	}
	rec := doJSON(t, h, http.MethodPut, "/api/home-page", token, draft)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestIntegration_ImageUploadAndServe(t *testing.T) {
	h, token := newTestServer(t)

	// http.DetectContentType needs a real PNG header.
	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 16)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "hero.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(png)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/images/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	uploaded := decode[map[string]any](t, rec)
	key := uploaded["storage_key"].(string)
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("storage key should keep extension, got %q", key)
	}

	rec = doJSON(t, h, http.MethodGet, "/images/"+key, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("serve: expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("served content type: got %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), png) {
		t.Fatal("served bytes differ from upload")
	}

	// Upload requires auth.
	req = httptest.NewRequest(http.MethodPost, "/api/images/upload", strings.NewReader(""))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated upload: expected 401, got %d", rec.Code)
	}
}

func TestIntegration_ContactFormAndInbox(t *testing.T) {
	h, token := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/messages", "", map[string]string{
		"name": "Visitor", "email": "visitor@example.com", "subject": "Hi", "message": "I need a site.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Inbox is admin-only.
	rec = doJSON(t, h, http.MethodGet, "/api/messages", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous inbox: expected 401, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/messages", token, nil)
	msgs := decode[[]map[string]any](t, rec)
	if len(msgs) != 1 || msgs[0]["is_read"] != false {
		t.Fatalf("unexpected inbox: %+v", msgs)
	}

	id := int64(msgs[0]["id"].(float64))
	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/messages/%d/read", id), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("mark read: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/messages/reply", token, map[string]string{
		"recipient_email": "visitor@example.com", "subject": "Re: Hi", "body": "Thanks!",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("reply: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/messages/%d/replies", id), token, nil)
	replies := decode[[]map[string]any](t, rec)
	if len(replies) != 1 || replies[0]["subject"] != "Re: Hi" {
		t.Fatalf("unexpected replies: %+v", replies)
	}
}

func TestIntegration_OrderLifecycle(t *testing.T) {
	h, token := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/orders", "", map[string]string{
		"name": "Client", "email": "client@example.com", "package_name": "Growth",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	created := decode[map[string]any](t, rec)
	orderID := created["order_id"].(string)
	if created["status"] != "pending" {
		t.Fatalf("expected pending, got %v", created["status"])
	}

	rec = doJSON(t, h, http.MethodPut, "/api/orders/"+orderID+"?status=confirmed", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update status: expected 204, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPut, "/api/orders/"+orderID+"?status=shipped", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/orders", token, nil)
	orders := decode[[]map[string]any](t, rec)
	if len(orders) != 1 || orders[0]["status"] != "confirmed" {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/orders/"+orderID, token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
}

func TestIntegration_ReviewApprovalFlow(t *testing.T) {
	h, token := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/reviews", "", map[string]any{
		"name": "Sam", "rating": 5, "review": "Stellar.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/reviews", "", nil)
	public := decode[[]map[string]any](t, rec)
	if len(public) != 0 {
		t.Fatalf("unapproved review is public: %+v", public)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/admin/reviews", token, nil)
	all := decode[[]map[string]any](t, rec)
	if len(all) != 1 {
		t.Fatalf("expected 1 review in admin list, got %d", len(all))
	}
	id := int64(all[0]["id"].(float64))

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/reviews/%d/approve", id), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("approve: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/reviews", "", nil)
	public = decode[[]map[string]any](t, rec)
	if len(public) != 1 {
		t.Fatalf("approved review missing from public list: %+v", public)
	}
}

func TestIntegration_ContactInfo(t *testing.T) {
	h, token := newTestServer(t)

	// Empty record before the first update.
	rec := doJSON(t, h, http.MethodGet, "/api/contact-info", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/contact-info", token, map[string]string{
		"email": "hello@minimind.example", "phone": "+1 555 0100",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/contact-info", "", nil)
	info := decode[map[string]any](t, rec)
	if info["email"] != "hello@minimind.example" {
		t.Fatalf("contact info not persisted: %+v", info)
	}
}

func TestIntegration_Healthz(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
