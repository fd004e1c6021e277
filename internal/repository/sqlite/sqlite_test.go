package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
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
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// Running migrations again must be a no-op, not an error.
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Email: "dup@example.com", DisplayName: "One", PasswordHash: "x"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	again := &domain.User{Email: "dup@example.com", DisplayName: "Two", PasswordHash: "y"}
	err := db.Users().Create(ctx, again)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fs := db.FileStore()

	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	if err := fs.Save(ctx, "k1.png", payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := fs.Get(ctx, "k1.png")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatal("stored bytes mismatch")
	}

	if err := fs.Delete(ctx, "k1.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := fs.Get(ctx, "k1.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHomePageRepo_ReplaceLists_AssignsIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := db.HomePage()

	page := &domain.HomePage{
		Content: domain.HomeContent{HeroTitle: "Hi"},
		HeroImages: []domain.HeroImage{
			{ImageURL: "https://cdn.example.com/a.jpg", DisplayOrder: 1},
			{ImageURL: "https://cdn.example.com/b.jpg", DisplayOrder: 2},
		},
		Stats: []domain.HomeStat{
			{Number: "10+", Label: "Years", DisplayOrder: 1},
		},
	}
	if err := repo.ReplaceLists(ctx, page); err != nil {
		t.Fatalf("ReplaceLists: %v", err)
	}

	if page.Content.ID == 0 {
		t.Fatal("expected content ID assigned")
	}
	for i, img := range page.HeroImages {
		if img.ID == 0 {
			t.Fatalf("hero image %d: no ID assigned", i)
		}
	}
	if page.Stats[0].ID == 0 {
		t.Fatal("expected stat ID assigned")
	}
}

func TestHomePageRepo_ReplaceLists_ReplacesWholesale(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := db.HomePage()

	first := &domain.HomePage{
		Content: domain.HomeContent{HeroTitle: "v1"},
		HeroImages: []domain.HeroImage{
			{ImageURL: "https://cdn.example.com/a.jpg", DisplayOrder: 1},
			{ImageURL: "https://cdn.example.com/b.jpg", DisplayOrder: 2},
			{ImageURL: "https://cdn.example.com/c.jpg", DisplayOrder: 3},
		},
	}
	if err := repo.ReplaceLists(ctx, first); err != nil {
		t.Fatalf("first ReplaceLists: %v", err)
	}

	second := &domain.HomePage{
		Content: domain.HomeContent{ID: first.Content.ID, HeroTitle: "v2"},
		HeroImages: []domain.HeroImage{
			{ImageURL: "https://cdn.example.com/only.jpg", DisplayOrder: 1},
		},
	}
	if err := repo.ReplaceLists(ctx, second); err != nil {
		t.Fatalf("second ReplaceLists: %v", err)
	}

	images, err := repo.ListHeroImages(ctx)
	if err != nil {
		t.Fatalf("ListHeroImages: %v", err)
	}
	if len(images) != 1 || images[0].ImageURL != "https://cdn.example.com/only.jpg" {
		t.Fatalf("lists not replaced wholesale: %+v", images)
	}

	content, err := repo.GetContent(ctx)
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	if content.HeroTitle != "v2" || content.ID != first.Content.ID {
		t.Fatalf("content not updated in place: %+v", content)
	}
}

func TestHomePageRepo_ReplaceLists_StaleContentIDLeavesListsUntouched(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := db.HomePage()

	seed := &domain.HomePage{
		Content:    domain.HomeContent{HeroTitle: "seed"},
		HeroImages: []domain.HeroImage{{ImageURL: "https://cdn.example.com/a.jpg", DisplayOrder: 1}},
	}
	if err := repo.ReplaceLists(ctx, seed); err != nil {
		t.Fatalf("seed ReplaceLists: %v", err)
	}

	stale := &domain.HomePage{
		Content: domain.HomeContent{ID: 9999, HeroTitle: "stale"},
	}
	err := repo.ReplaceLists(ctx, stale)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The failed save must not have emptied the collections.
	images, err := repo.ListHeroImages(ctx)
	if err != nil {
		t.Fatalf("ListHeroImages: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("transaction leaked: %d hero images left", len(images))
	}
}

func TestOrderRepo_GetByOrderID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := db.Orders()

	order := &domain.Order{
		OrderID:     "ORD-1-abc",
		Name:        "Client",
		Email:       "client@example.com",
		PackageName: "Starter",
		Status:      domain.OrderStatusPending,
	}
	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByOrderID(ctx, "ORD-1-abc")
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if got.Email != "client@example.com" {
		t.Fatalf("unexpected order: %+v", got)
	}

	if _, err := repo.GetByOrderID(ctx, "ORD-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
