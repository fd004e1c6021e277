package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minimindteam/Dash/internal/domain"
)

// homePageRepo implements domain.HomePageRepository using SQLite.
type homePageRepo struct {
	db *sql.DB
}

func (r *homePageRepo) GetContent(ctx context.Context) (*domain.HomeContent, error) {
	c := &domain.HomeContent{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, hero_title, hero_subtitle, hero_description, cta_title, cta_subtitle
		 FROM home_content LIMIT 1`,
	).Scan(&c.ID, &c.HeroTitle, &c.HeroSubtitle, &c.HeroDescription, &c.CTATitle, &c.CTASubtitle)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get home content: %w", err)
	}
	return c, nil
}

func (r *homePageRepo) InsertContent(ctx context.Context, content *domain.HomeContent) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO home_content (hero_title, hero_subtitle, hero_description, cta_title, cta_subtitle)
		 VALUES (?, ?, ?, ?, ?)`,
		content.HeroTitle, content.HeroSubtitle, content.HeroDescription,
		content.CTATitle, content.CTASubtitle,
	)
	if err != nil {
		return fmt.Errorf("insert home content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get content id: %w", err)
	}
	content.ID = id
	return nil
}

func (r *homePageRepo) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, image_url, display_order, created_at
		 FROM hero_images ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("list hero images: %w", err)
	}
	defer rows.Close()

	var images []domain.HeroImage
	for rows.Next() {
		var img domain.HeroImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.DisplayOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan hero image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *homePageRepo) ListStats(ctx context.Context) ([]domain.HomeStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, number, label, icon, display_order, created_at
		 FROM home_stats ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("list home stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.HomeStat
	for rows.Next() {
		var s domain.HomeStat
		if err := rows.Scan(&s.ID, &s.Number, &s.Label, &s.Icon, &s.DisplayOrder, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan home stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *homePageRepo) ListServicePreviews(ctx context.Context) ([]domain.ServicePreview, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, image_url, display_order, created_at
		 FROM home_services_preview ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("list service previews: %w", err)
	}
	defer rows.Close()

	var previews []domain.ServicePreview
	for rows.Next() {
		var p domain.ServicePreview
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.DisplayOrder, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service preview: %w", err)
		}
		previews = append(previews, p)
	}
	return previews, rows.Err()
}

// ReplaceLists upserts the content row and replaces the three list
// collections wholesale inside a single transaction. display_order values
// are taken as given; callers recompute them from list position.
func (r *homePageRepo) ReplaceLists(ctx context.Context, page *domain.HomePage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if page.Content.ID != 0 {
		result, err := tx.ExecContext(ctx,
			`UPDATE home_content SET hero_title = ?, hero_subtitle = ?, hero_description = ?, cta_title = ?, cta_subtitle = ?
			 WHERE id = ?`,
			page.Content.HeroTitle, page.Content.HeroSubtitle, page.Content.HeroDescription,
			page.Content.CTATitle, page.Content.CTASubtitle, page.Content.ID,
		)
		if err != nil {
			return fmt.Errorf("update home content: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if rows == 0 {
			return domain.ErrNotFound
		}
	} else {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO home_content (hero_title, hero_subtitle, hero_description, cta_title, cta_subtitle)
			 VALUES (?, ?, ?, ?, ?)`,
			page.Content.HeroTitle, page.Content.HeroSubtitle, page.Content.HeroDescription,
			page.Content.CTATitle, page.Content.CTASubtitle,
		)
		if err != nil {
			return fmt.Errorf("insert home content: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get content id: %w", err)
		}
		page.Content.ID = id
	}

	// Full replace: delete all existing rows, then reinsert the current lists.
	if _, err := tx.ExecContext(ctx, "DELETE FROM hero_images"); err != nil {
		return fmt.Errorf("delete hero images: %w", err)
	}
	for i := range page.HeroImages {
		img := &page.HeroImages[i]
		result, err := tx.ExecContext(ctx,
			"INSERT INTO hero_images (image_url, display_order) VALUES (?, ?)",
			img.ImageURL, img.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("insert hero image %d: %w", i, err)
		}
		if img.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("get hero image id: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM home_stats"); err != nil {
		return fmt.Errorf("delete home stats: %w", err)
	}
	for i := range page.Stats {
		s := &page.Stats[i]
		result, err := tx.ExecContext(ctx,
			"INSERT INTO home_stats (number, label, icon, display_order) VALUES (?, ?, ?, ?)",
			s.Number, s.Label, s.Icon, s.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("insert home stat %d: %w", i, err)
		}
		if s.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("get home stat id: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM home_services_preview"); err != nil {
		return fmt.Errorf("delete service previews: %w", err)
	}
	for i := range page.ServicesPreview {
		p := &page.ServicesPreview[i]
		result, err := tx.ExecContext(ctx,
			"INSERT INTO home_services_preview (title, description, image_url, display_order) VALUES (?, ?, ?, ?)",
			p.Title, p.Description, p.ImageURL, p.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("insert service preview %d: %w", i, err)
		}
		if p.ID, err = result.LastInsertId(); err != nil {
			return fmt.Errorf("get service preview id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *homePageRepo) DeleteHeroImage(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "hero_images", id)
}

func (r *homePageRepo) DeleteStat(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "home_stats", id)
}

func (r *homePageRepo) DeleteServicePreview(ctx context.Context, id int64) error {
	return r.deleteRow(ctx, "home_services_preview", id)
}

func (r *homePageRepo) deleteRow(ctx context.Context, table string, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
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
