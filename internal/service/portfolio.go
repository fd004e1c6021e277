package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minimindteam/Dash/internal/domain"
)

// PortfolioService manages showcased projects and their categories.
type PortfolioService struct {
	projects   domain.PortfolioRepository
	categories domain.PortfolioCategoryRepository
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(projects domain.PortfolioRepository, categories domain.PortfolioCategoryRepository) *PortfolioService {
	return &PortfolioService{projects: projects, categories: categories}
}

// ListProjects returns all projects, newest first. Public.
func (s *PortfolioService) ListProjects(ctx context.Context) ([]domain.PortfolioProject, error) {
	return s.projects.List(ctx)
}

// CreateProject adds a project.
func (s *PortfolioService) CreateProject(ctx context.Context, sess *domain.Session, project *domain.PortfolioProject) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateProject(project); err != nil {
		return err
	}
	return s.projects.Create(ctx, project)
}

// UpdateProject overwrites a project.
func (s *PortfolioService) UpdateProject(ctx context.Context, sess *domain.Session, project *domain.PortfolioProject) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateProject(project); err != nil {
		return err
	}
	return s.projects.Update(ctx, project)
}

// DeleteProject removes a project.
func (s *PortfolioService) DeleteProject(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.projects.Delete(ctx, id)
}

// ListCategories returns all categories sorted by name. Public.
func (s *PortfolioService) ListCategories(ctx context.Context) ([]domain.PortfolioCategory, error) {
	return s.categories.List(ctx)
}

// CreateCategory adds a category.
func (s *PortfolioService) CreateCategory(ctx context.Context, sess *domain.Session, category *domain.PortfolioCategory) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validation.Validate(category.Name, validation.Required); err != nil {
		return fmt.Errorf("%w: name: %s", domain.ErrInvalidInput, err)
	}
	return s.categories.Create(ctx, category)
}

// DeleteCategory removes a category.
func (s *PortfolioService) DeleteCategory(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.categories.Delete(ctx, id)
}

func validateProject(project *domain.PortfolioProject) error {
	err := validation.Errors{
		"title":       validation.Validate(project.Title, validation.Required),
		"description": validation.Validate(project.Description, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}
