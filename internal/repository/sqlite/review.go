package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// reviewRepo implements domain.ReviewRepository using SQLite.
type reviewRepo struct {
	db *sql.DB
}

const reviewColumns = `id, name, designation, company, company_url, project, rating, review, image_url, approved, created_at`

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (name, designation, company, company_url, project, rating, review, image_url, approved, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		review.Name, review.Designation, review.Company, review.CompanyURL,
		review.Project, review.Rating, review.Review, review.ImageURL, review.Approved, now,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get review id: %w", err)
	}
	review.ID = id
	review.CreatedAt = now
	return nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	rev := &domain.Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id,
	).Scan(&rev.ID, &rev.Name, &rev.Designation, &rev.Company, &rev.CompanyURL,
		&rev.Project, &rev.Rating, &rev.Review, &rev.ImageURL, &rev.Approved, &rev.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rev, nil
}

func (r *reviewRepo) List(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if approvedOnly {
		query += ` WHERE approved = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.Designation, &rev.Company, &rev.CompanyURL,
			&rev.Project, &rev.Rating, &rev.Review, &rev.ImageURL, &rev.Approved, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Update(ctx context.Context, review *domain.Review) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET name = ?, designation = ?, company = ?, company_url = ?, project = ?, rating = ?, review = ?, image_url = ?, approved = ?
		 WHERE id = ?`,
		review.Name, review.Designation, review.Company, review.CompanyURL,
		review.Project, review.Rating, review.Review, review.ImageURL, review.Approved, review.ID,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
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

func (r *reviewRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET approved = ? WHERE id = ?", approved, id)
	if err != nil {
		return fmt.Errorf("set review approved: %w", err)
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

func (r *reviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
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

// reviewsStatRepo implements domain.ReviewsStatRepository using SQLite.
type reviewsStatRepo struct {
	db *sql.DB
}

func (r *reviewsStatRepo) Create(ctx context.Context, stat *domain.ReviewsStat) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews_stats (number, label, sort_order) VALUES (?, ?, ?)",
		stat.Number, stat.Label, stat.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("insert reviews stat: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get stat id: %w", err)
	}
	stat.ID = id
	return nil
}

func (r *reviewsStatRepo) List(ctx context.Context) ([]domain.ReviewsStat, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, number, label, sort_order FROM reviews_stats ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("list reviews stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.ReviewsStat
	for rows.Next() {
		var s domain.ReviewsStat
		if err := rows.Scan(&s.ID, &s.Number, &s.Label, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scan reviews stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reviewsStatRepo) Update(ctx context.Context, stat *domain.ReviewsStat) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reviews_stats SET number = ?, label = ?, sort_order = ? WHERE id = ?",
		stat.Number, stat.Label, stat.SortOrder, stat.ID,
	)
	if err != nil {
		return fmt.Errorf("update reviews stat: %w", err)
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

func (r *reviewsStatRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reviews_stats WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete reviews stat: %w", err)
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
