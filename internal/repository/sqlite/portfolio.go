package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// portfolioRepo implements domain.PortfolioRepository using SQLite.
type portfolioRepo struct {
	db *sql.DB
}

func (r *portfolioRepo) Create(ctx context.Context, project *domain.PortfolioProject) error {
	projectImages, err := marshalStrings(project.ProjectImages)
	if err != nil {
		return err
	}
	technologies, err := marshalStrings(project.Technologies)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO portfolio_projects (title, description, image_url, project_images, category_name, aspect_ratio, technologies, url, github_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.Title, project.Description, project.ImageURL, projectImages,
		project.CategoryName, project.AspectRatio, technologies, project.URL,
		project.GithubURL, now,
	)
	if err != nil {
		return fmt.Errorf("insert portfolio project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get project id: %w", err)
	}
	project.ID = id
	project.CreatedAt = now
	return nil
}

func (r *portfolioRepo) GetByID(ctx context.Context, id int64) (*domain.PortfolioProject, error) {
	p := &domain.PortfolioProject{}
	var projectImages, technologies string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, image_url, project_images, category_name, aspect_ratio, technologies, url, github_url, created_at
		 FROM portfolio_projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &projectImages,
		&p.CategoryName, &p.AspectRatio, &technologies, &p.URL, &p.GithubURL, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get portfolio project: %w", err)
	}

	if p.ProjectImages, err = unmarshalStrings(projectImages); err != nil {
		return nil, err
	}
	if p.Technologies, err = unmarshalStrings(technologies); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *portfolioRepo) List(ctx context.Context) ([]domain.PortfolioProject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, image_url, project_images, category_name, aspect_ratio, technologies, url, github_url, created_at
		 FROM portfolio_projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list portfolio projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.PortfolioProject
	for rows.Next() {
		var p domain.PortfolioProject
		var projectImages, technologies string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &projectImages,
			&p.CategoryName, &p.AspectRatio, &technologies, &p.URL, &p.GithubURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan portfolio project: %w", err)
		}
		if p.ProjectImages, err = unmarshalStrings(projectImages); err != nil {
			return nil, err
		}
		if p.Technologies, err = unmarshalStrings(technologies); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *portfolioRepo) Update(ctx context.Context, project *domain.PortfolioProject) error {
	projectImages, err := marshalStrings(project.ProjectImages)
	if err != nil {
		return err
	}
	technologies, err := marshalStrings(project.Technologies)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE portfolio_projects SET title = ?, description = ?, image_url = ?, project_images = ?, category_name = ?, aspect_ratio = ?, technologies = ?, url = ?, github_url = ?
		 WHERE id = ?`,
		project.Title, project.Description, project.ImageURL, projectImages,
		project.CategoryName, project.AspectRatio, technologies, project.URL,
		project.GithubURL, project.ID,
	)
	if err != nil {
		return fmt.Errorf("update portfolio project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *portfolioRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM portfolio_projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete portfolio project: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// portfolioCategoryRepo implements domain.PortfolioCategoryRepository.
type portfolioCategoryRepo struct {
	db *sql.DB
}

func (r *portfolioCategoryRepo) Create(ctx context.Context, category *domain.PortfolioCategory) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO portfolio_categories (name) VALUES (?)", category.Name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: category %q already exists", domain.ErrInvalidInput, category.Name)
		}
		return fmt.Errorf("insert portfolio category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get category id: %w", err)
	}
	category.ID = id
	return nil
}

func (r *portfolioCategoryRepo) List(ctx context.Context) ([]domain.PortfolioCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name FROM portfolio_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list portfolio categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.PortfolioCategory
	for rows.Next() {
		var c domain.PortfolioCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan portfolio category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *portfolioCategoryRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM portfolio_categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete portfolio category: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
