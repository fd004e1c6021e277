package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// serviceRepo implements domain.ServiceRepository using SQLite.
type serviceRepo struct {
	db *sql.DB
}

func (r *serviceRepo) Create(ctx context.Context, svc *domain.Service) error {
	features, err := marshalStrings(svc.Features)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO services (title, description, icon, price, features, cover_image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		svc.Title, svc.Description, svc.Icon, svc.Price, features, svc.CoverImageURL, now,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get service id: %w", err)
	}
	svc.ID = id
	svc.CreatedAt = now
	return nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	s := &domain.Service{}
	var features string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, icon, price, features, cover_image_url, created_at
		 FROM services WHERE id = ?`, id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Price, &features, &s.CoverImageURL, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	if s.Features, err = unmarshalStrings(features); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, icon, price, features, cover_image_url, created_at
		 FROM services ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		var features string
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.Price, &features, &s.CoverImageURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		if s.Features, err = unmarshalStrings(features); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *serviceRepo) Update(ctx context.Context, svc *domain.Service) error {
	features, err := marshalStrings(svc.Features)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE services SET title = ?, description = ?, icon = ?, price = ?, features = ?, cover_image_url = ?
		 WHERE id = ?`,
		svc.Title, svc.Description, svc.Icon, svc.Price, features, svc.CoverImageURL, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
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

func (r *serviceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
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

// packageRepo implements domain.PackageRepository using SQLite.
type packageRepo struct {
	db *sql.DB
}

func (r *packageRepo) Create(ctx context.Context, pkg *domain.Package) error {
	features, err := marshalStrings(pkg.Features)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO packages (title, description, price, features, is_popular, duration, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		pkg.Title, pkg.Description, pkg.Price, features, pkg.IsPopular, pkg.Duration, now,
	)
	if err != nil {
		return fmt.Errorf("insert package: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get package id: %w", err)
	}
	pkg.ID = id
	pkg.CreatedAt = now
	return nil
}

func (r *packageRepo) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	p := &domain.Package{}
	var features string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, price, features, is_popular, duration, created_at
		 FROM packages WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &features, &p.IsPopular, &p.Duration, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get package: %w", err)
	}

	if p.Features, err = unmarshalStrings(features); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *packageRepo) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, price, features, is_popular, duration, created_at
		 FROM packages ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		var p domain.Package
		var features string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &features, &p.IsPopular, &p.Duration, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		if p.Features, err = unmarshalStrings(features); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *packageRepo) Update(ctx context.Context, pkg *domain.Package) error {
	features, err := marshalStrings(pkg.Features)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE packages SET title = ?, description = ?, price = ?, features = ?, is_popular = ?, duration = ?
		 WHERE id = ?`,
		pkg.Title, pkg.Description, pkg.Price, features, pkg.IsPopular, pkg.Duration, pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
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

func (r *packageRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM packages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
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
