package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/service"
)

func newTestCatalogService(t *testing.T) *service.CatalogService {
	t.Helper()
	db := newTestDB(t)
	return service.NewCatalogService(db.Services(), db.Packages())
}

func TestCatalogService_ServiceCRUD(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	created := &domain.Service{
		Title:       "Web Design",
		Description: "Responsive sites",
		Price:       "$2,000",
		Features:    []string{"Figma", "Responsive"},
	}
	if err := svc.CreateService(ctx, testSession(), created); err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected service ID to be set")
	}

	created.Title = "Web Design & Build"
	if err := svc.UpdateService(ctx, testSession(), created); err != nil {
		t.Fatalf("UpdateService: %v", err)
	}

	services, err := svc.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 1 || services[0].Title != "Web Design & Build" {
		t.Fatalf("unexpected services: %+v", services)
	}
	if len(services[0].Features) != 2 {
		t.Fatalf("features not persisted: %+v", services[0].Features)
	}

	if err := svc.DeleteService(ctx, testSession(), created.ID); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}
	if err := svc.DeleteService(ctx, testSession(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_CreateService_Invalid(t *testing.T) {
	svc := newTestCatalogService(t)

	err := svc.CreateService(context.Background(), testSession(), &domain.Service{Title: "No description"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_PackageCRUD(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	pkg := &domain.Package{
		Title:     "Growth",
		Price:     "$5,000",
		Features:  []string{"Everything in Starter", "SEO"},
		IsPopular: true,
		Duration:  "monthly",
	}
	if err := svc.CreatePackage(ctx, testSession(), pkg); err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}

	packages, err := svc.ListPackages(ctx)
	if err != nil {
		t.Fatalf("ListPackages: %v", err)
	}
	if len(packages) != 1 || !packages[0].IsPopular {
		t.Fatalf("unexpected packages: %+v", packages)
	}

	pkg.Price = "$6,000"
	if err := svc.UpdatePackage(ctx, testSession(), pkg); err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	if err := svc.DeletePackage(ctx, testSession(), pkg.ID); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
}

func TestCatalogService_CreatePackage_Invalid(t *testing.T) {
	svc := newTestCatalogService(t)

	err := svc.CreatePackage(context.Background(), testSession(), &domain.Package{Title: "No price"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_Writes_Unauthenticated(t *testing.T) {
	svc := newTestCatalogService(t)
	ctx := context.Background()

	if err := svc.CreateService(ctx, nil, &domain.Service{Title: "T", Description: "D"}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("CreateService: expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.DeletePackage(ctx, nil, 1); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("DeletePackage: expected ErrUnauthenticated, got %v", err)
	}
}
