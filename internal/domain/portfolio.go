package domain

import (
	"context"
	"time"
)

// PortfolioProject is one showcased project.
type PortfolioProject struct {
	ID            int64
	Title         string
	Description   string
	ImageURL      string
	ProjectImages []string
	CategoryName  string
	AspectRatio   string
	Technologies  []string
	URL           string
	GithubURL     string
	CreatedAt     time.Time
}

// PortfolioCategory groups portfolio projects by name.
type PortfolioCategory struct {
	ID   int64
	Name string
}

// PortfolioRepository defines persistence operations for projects.
type PortfolioRepository interface {
	Create(ctx context.Context, project *PortfolioProject) error
	GetByID(ctx context.Context, id int64) (*PortfolioProject, error)
	List(ctx context.Context) ([]PortfolioProject, error)
	Update(ctx context.Context, project *PortfolioProject) error
	Delete(ctx context.Context, id int64) error
}

// PortfolioCategoryRepository defines persistence operations for categories.
type PortfolioCategoryRepository interface {
	Create(ctx context.Context, category *PortfolioCategory) error
	List(ctx context.Context) ([]PortfolioCategory, error)
	Delete(ctx context.Context, id int64) error
}
