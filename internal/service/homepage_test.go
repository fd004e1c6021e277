package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/editor"
	"github.com/minimindteam/Dash/internal/repository/sqlite"
	"github.com/minimindteam/Dash/internal/service"
)

// tinyPNG is enough bytes for http.DetectContentType to matter elsewhere;
// the image service trusts the declared content type, so any payload works.
var tinyPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestHomePageService(t *testing.T) (*service.HomePageService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	images := service.NewImageService(db.Images(), db.FileStore(), "http://localhost:8080")
	return service.NewHomePageService(db.HomePage(), images), db
}

func testSession() *domain.Session {
	return &domain.Session{UserID: 1, Email: "admin@example.com"}
}

func sampleDraft() *editor.Draft {
	return &editor.Draft{
		Content: domain.HomeContent{
			HeroTitle:    "We Build Brands",
			HeroSubtitle: "Marketing that works",
			CTATitle:     "Ready to start?",
		},
		HeroImages: []editor.ImageSource{
			{Type: editor.SourceURL, URL: "https://cdn.example.com/a.jpg"},
			{Type: editor.SourceURL, URL: "https://cdn.example.com/b.jpg"},
		},
		Stats: []editor.Stat{
			{Number: "120+", Label: "Projects", Icon: "Rocket"},
			{Number: "98%", Label: "Happy clients", Icon: "Heart"},
		},
		ServicesPreview: []editor.ServicePreview{
			{
				Title:       "Branding",
				Description: "Identity from scratch",
				Image:       editor.ImageSource{Type: editor.SourceURL, URL: "https://cdn.example.com/c.jpg"},
			},
		},
	}
}

func TestHomePageService_Fetch_AnonymousDoesNotCreateSingleton(t *testing.T) {
	svc, db := newTestHomePageService(t)
	ctx := context.Background()

	page, err := svc.Fetch(ctx, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if page.Content.ID != 0 {
		t.Fatalf("expected placeholder content, got ID %d", page.Content.ID)
	}

	// Nothing must have been written.
	if _, err := db.HomePage().GetContent(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after anonymous fetch, got %v", err)
	}
}

func TestHomePageService_Fetch_AuthenticatedCreatesSingletonOnce(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	first, err := svc.Fetch(ctx, testSession())
	if err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	if first.Content.ID == 0 {
		t.Fatal("expected content row to be created")
	}

	second, err := svc.Fetch(ctx, testSession())
	if err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if second.Content.ID != first.Content.ID {
		t.Fatalf("expected same singleton row, got %d and %d", first.Content.ID, second.Content.ID)
	}
}

func TestHomePageService_Save_RoundTrip(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, testSession(), sampleDraft())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Content.ID == 0 {
		t.Fatal("expected content row to be created on save")
	}

	page, err := svc.Fetch(ctx, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if page.Content.HeroTitle != "We Build Brands" {
		t.Fatalf("hero title: got %q", page.Content.HeroTitle)
	}
	if len(page.HeroImages) != 2 || len(page.Stats) != 2 || len(page.ServicesPreview) != 1 {
		t.Fatalf("unexpected list sizes: %d hero, %d stats, %d previews",
			len(page.HeroImages), len(page.Stats), len(page.ServicesPreview))
	}

	// Display order is recomputed from list position, 1-based.
	for i, img := range page.HeroImages {
		if img.DisplayOrder != i+1 {
			t.Fatalf("hero image %d: display order %d", i, img.DisplayOrder)
		}
	}
	if page.HeroImages[0].ImageURL != "https://cdn.example.com/a.jpg" {
		t.Fatalf("hero image order not preserved: %s", page.HeroImages[0].ImageURL)
	}
	if page.Stats[1].Icon != "Heart" {
		t.Fatalf("stat icon: got %q", page.Stats[1].Icon)
	}
}

func TestHomePageService_Save_UploadsPendingFiles(t *testing.T) {
	svc, db := newTestHomePageService(t)
	ctx := context.Background()

	draft := sampleDraft()
	draft.HeroImages = []editor.ImageSource{
		{
			Type: editor.SourceFile,
			File: &editor.PendingFile{Name: "hero.png", ContentType: "image/png", Data: tinyPNG},
		},
	}

	saved, err := svc.Save(ctx, testSession(), draft)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	url := saved.HeroImages[0].ImageURL
	if !strings.Contains(url, "/images/") {
		t.Fatalf("expected uploaded image URL, got %q", url)
	}

	stored, err := db.Images().List(ctx)
	if err != nil {
		t.Fatalf("List images: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected exactly one stored image, got %d", len(stored))
	}
	if stored[0].Filename != "hero.png" {
		t.Fatalf("stored filename: got %q", stored[0].Filename)
	}
}

func TestHomePageService_Save_FileTypeWithoutFileFallsBackToURL(t *testing.T) {
	svc, db := newTestHomePageService(t)
	ctx := context.Background()

	draft := sampleDraft()
	draft.HeroImages = []editor.ImageSource{
		{Type: editor.SourceFile, URL: "https://cdn.example.com/kept.jpg"},
	}

	saved, err := svc.Save(ctx, testSession(), draft)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.HeroImages[0].ImageURL != "https://cdn.example.com/kept.jpg" {
		t.Fatalf("expected URL fallback, got %q", saved.HeroImages[0].ImageURL)
	}

	stored, err := db.Images().List(ctx)
	if err != nil {
		t.Fatalf("List images: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected no uploads, got %d", len(stored))
	}
}

func TestHomePageService_Save_UnauthenticatedWritesNothing(t *testing.T) {
	svc, db := newTestHomePageService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, nil, sampleDraft())
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	if _, err := db.HomePage().GetContent(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected no content row, got %v", err)
	}
	images, err := db.HomePage().ListHeroImages(ctx)
	if err != nil {
		t.Fatalf("ListHeroImages: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no hero images, got %d", len(images))
	}
}

func TestHomePageService_Save_InvalidStat(t *testing.T) {
	svc, _ := newTestHomePageService(t)

	draft := sampleDraft()
	draft.Stats[0].Label = ""

	_, err := svc.Save(context.Background(), testSession(), draft)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHomePageService_Save_UnknownStatIcon(t *testing.T) {
	svc, _ := newTestHomePageService(t)

	draft := sampleDraft()
	draft.Stats[0].Icon = "NotAnIcon"

	_, err := svc.Save(context.Background(), testSession(), draft)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestHomePageService_Save_Twice(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, testSession(), sampleDraft()); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := svc.Save(ctx, testSession(), sampleDraft())
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	// Lists are replaced wholesale, never accumulated.
	page, err := svc.Fetch(ctx, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(page.HeroImages) != 2 || len(page.Stats) != 2 || len(page.ServicesPreview) != 1 {
		t.Fatalf("lists accumulated across saves: %d hero, %d stats, %d previews",
			len(page.HeroImages), len(page.Stats), len(page.ServicesPreview))
	}
	if second.Content.ID != page.Content.ID {
		t.Fatalf("content row changed identity: %d vs %d", second.Content.ID, page.Content.ID)
	}
}

func TestHomePageService_Save_EmptyListsClearCollections(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, testSession(), sampleDraft())
	if err != nil {
		t.Fatalf("seed Save: %v", err)
	}

	empty := &editor.Draft{Content: saved.Content}
	if _, err := svc.Save(ctx, testSession(), empty); err != nil {
		t.Fatalf("empty Save: %v", err)
	}

	page, err := svc.Fetch(ctx, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(page.HeroImages) != 0 || len(page.Stats) != 0 || len(page.ServicesPreview) != 0 {
		t.Fatal("expected all collections cleared")
	}
}

func TestHomePageService_DeleteHeroImage(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, testSession(), sampleDraft())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := svc.DeleteHeroImage(ctx, testSession(), saved.HeroImages[0].ID); err != nil {
		t.Fatalf("DeleteHeroImage: %v", err)
	}

	page, err := svc.Fetch(ctx, nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(page.HeroImages) != 1 {
		t.Fatalf("expected one hero image left, got %d", len(page.HeroImages))
	}
	if page.HeroImages[0].ID != saved.HeroImages[1].ID {
		t.Fatal("wrong hero image deleted")
	}
}

func TestHomePageService_DeleteHeroImage_NotFound(t *testing.T) {
	svc, _ := newTestHomePageService(t)

	err := svc.DeleteHeroImage(context.Background(), testSession(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHomePageService_Delete_Unauthenticated(t *testing.T) {
	svc, _ := newTestHomePageService(t)
	ctx := context.Background()

	if err := svc.DeleteStat(ctx, nil, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("DeleteStat: expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.DeleteServicePreview(ctx, nil, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("DeleteServicePreview: expected ErrUnauthenticated, got %v", err)
	}
}
