package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minimindteam/Dash/internal/domain"
)

// CatalogService manages the public services list and priced packages.
type CatalogService struct {
	services domain.ServiceRepository
	packages domain.PackageRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(services domain.ServiceRepository, packages domain.PackageRepository) *CatalogService {
	return &CatalogService{services: services, packages: packages}
}

// ListServices returns all services in creation order. Public.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

// CreateService adds a service.
func (s *CatalogService) CreateService(ctx context.Context, sess *domain.Session, svc *domain.Service) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateService(svc); err != nil {
		return err
	}
	return s.services.Create(ctx, svc)
}

// UpdateService overwrites a service.
func (s *CatalogService) UpdateService(ctx context.Context, sess *domain.Session, svc *domain.Service) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateService(svc); err != nil {
		return err
	}
	return s.services.Update(ctx, svc)
}

// DeleteService removes a service.
func (s *CatalogService) DeleteService(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.services.Delete(ctx, id)
}

// ListPackages returns all packages in creation order. Public.
func (s *CatalogService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packages.List(ctx)
}

// CreatePackage adds a package.
func (s *CatalogService) CreatePackage(ctx context.Context, sess *domain.Session, pkg *domain.Package) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validatePackage(pkg); err != nil {
		return err
	}
	return s.packages.Create(ctx, pkg)
}

// UpdatePackage overwrites a package.
func (s *CatalogService) UpdatePackage(ctx context.Context, sess *domain.Session, pkg *domain.Package) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validatePackage(pkg); err != nil {
		return err
	}
	return s.packages.Update(ctx, pkg)
}

// DeletePackage removes a package.
func (s *CatalogService) DeletePackage(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.packages.Delete(ctx, id)
}

func validateService(svc *domain.Service) error {
	err := validation.Errors{
		"title":       validation.Validate(svc.Title, validation.Required),
		"description": validation.Validate(svc.Description, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}

func validatePackage(pkg *domain.Package) error {
	err := validation.Errors{
		"title": validation.Validate(pkg.Title, validation.Required),
		"price": validation.Validate(pkg.Price, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}
