package domain

import (
	"context"
	"time"
)

// Service is one offering on the services page.
type Service struct {
	ID            int64
	Title         string
	Description   string
	Icon          string
	Price         string
	Features      []string
	CoverImageURL string
	CreatedAt     time.Time
}

// Package is a priced bundle shown on the pricing page.
type Package struct {
	ID          int64
	Title       string
	Description string
	Price       string
	Features    []string
	IsPopular   bool
	Duration    string
	CreatedAt   time.Time
}

// ServiceRepository defines persistence operations for services.
type ServiceRepository interface {
	Create(ctx context.Context, svc *Service) error
	GetByID(ctx context.Context, id int64) (*Service, error)
	List(ctx context.Context) ([]Service, error)
	Update(ctx context.Context, svc *Service) error
	Delete(ctx context.Context, id int64) error
}

// PackageRepository defines persistence operations for packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *Package) error
	GetByID(ctx context.Context, id int64) (*Package, error)
	List(ctx context.Context) ([]Package, error)
	Update(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id int64) error
}
