package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// storedImageRepo implements domain.StoredImageRepository using SQLite.
type storedImageRepo struct {
	db *sql.DB
}

func (r *storedImageRepo) Create(ctx context.Context, image *domain.StoredImage) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO stored_images (filename, content_type, size, storage_key, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		image.Filename, image.ContentType, image.Size, image.StorageKey, now,
	)
	if err != nil {
		return fmt.Errorf("insert stored image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get image id: %w", err)
	}
	image.ID = id
	image.CreatedAt = now
	return nil
}

func (r *storedImageRepo) GetByKey(ctx context.Context, key string) (*domain.StoredImage, error) {
	img := &domain.StoredImage{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, filename, content_type, size, storage_key, created_at
		 FROM stored_images WHERE storage_key = ?`, key,
	).Scan(&img.ID, &img.Filename, &img.ContentType, &img.Size, &img.StorageKey, &img.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stored image: %w", err)
	}
	return img, nil
}

func (r *storedImageRepo) List(ctx context.Context) ([]domain.StoredImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, filename, content_type, size, storage_key, created_at
		 FROM stored_images ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stored images: %w", err)
	}
	defer rows.Close()

	var images []domain.StoredImage
	for rows.Next() {
		var img domain.StoredImage
		if err := rows.Scan(&img.ID, &img.Filename, &img.ContentType, &img.Size, &img.StorageKey, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stored image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *storedImageRepo) DeleteByKey(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM stored_images WHERE storage_key = ?", key)
	if err != nil {
		return fmt.Errorf("delete stored image: %w", err)
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
