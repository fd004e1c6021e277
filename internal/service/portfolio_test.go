package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

func newTestPortfolioService(t *testing.T) *service.PortfolioService {
	t.Helper()
	db := newTestDB(t)
	return service.NewPortfolioService(db.Portfolio(), db.PortfolioCategories())
}

func TestPortfolioService_ProjectCRUD(t *testing.T) {
	svc := newTestPortfolioService(t)
	ctx := context.Background()

	project := &domain.PortfolioProject{
		Title:         "Acme Rebrand",
		Description:   "Full identity refresh",
		CategoryName:  "Branding",
		ProjectImages: []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
		Technologies:  []string{"Figma"},
	}
	if err := svc.CreateProject(ctx, testSession(), project); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if project.ID == 0 {
		t.Fatal("expected project ID to be set")
	}

	project.Title = "Acme Rebrand 2.0"
	if err := svc.UpdateProject(ctx, testSession(), project); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	projects, err := svc.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Acme Rebrand 2.0" {
		t.Fatalf("unexpected projects: %+v", projects)
	}
	if len(projects[0].ProjectImages) != 2 {
		t.Fatalf("project images not persisted: %+v", projects[0].ProjectImages)
	}

	if err := svc.DeleteProject(ctx, testSession(), project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
}

func TestPortfolioService_CreateProject_Invalid(t *testing.T) {
	svc := newTestPortfolioService(t)

	err := svc.CreateProject(context.Background(), testSession(), &domain.PortfolioProject{Title: "Only title"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPortfolioService_Categories(t *testing.T) {
	svc := newTestPortfolioService(t)
	ctx := context.Background()

	for _, name := range []string{"Web", "Branding"} {
		if err := svc.CreateCategory(ctx, testSession(), &domain.PortfolioCategory{Name: name}); err != nil {
			t.Fatalf("CreateCategory(%s): %v", name, err)
		}
	}

	categories, err := svc.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	// Sorted by name.
	if categories[0].Name != "Branding" {
		t.Fatalf("expected name-sorted categories, got %q first", categories[0].Name)
	}

	if err := svc.DeleteCategory(ctx, testSession(), categories[0].ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
}

func TestPortfolioService_CreateCategory_DuplicateName(t *testing.T) {
	svc := newTestPortfolioService(t)
	ctx := context.Background()

	if err := svc.CreateCategory(ctx, testSession(), &domain.PortfolioCategory{Name: "Web"}); err != nil {
		t.Fatalf("first CreateCategory: %v", err)
	}
	err := svc.CreateCategory(ctx, testSession(), &domain.PortfolioCategory{Name: "Web"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate name, got %v", err)
	}
}

func TestPortfolioService_Writes_Unauthenticated(t *testing.T) {
	svc := newTestPortfolioService(t)

	err := svc.CreateProject(context.Background(), nil, &domain.PortfolioProject{Title: "T", Description: "D"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
