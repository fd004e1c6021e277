package domain

import (
	"context"
	"time"
)

// StoredImage holds metadata about an uploaded image. The bytes themselves
// live in the FileStore under StorageKey; the public URL is derived from
// the key by the image service.
type StoredImage struct {
	ID          int64
	Filename    string // Original upload filename
	ContentType string
	Size        int64
	StorageKey  string
	CreatedAt   time.Time
}

// StoredImageRepository handles image metadata persistence.
type StoredImageRepository interface {
	Create(ctx context.Context, image *StoredImage) error
	GetByKey(ctx context.Context, key string) (*StoredImage, error)
	List(ctx context.Context) ([]StoredImage, error)
	DeleteByKey(ctx context.Context, key string) error
}

// FileStore abstracts raw file byte storage. The initial implementation
// stores BLOBs in SQLite; this interface allows swapping to filesystem,
// S3, or another backend later.
type FileStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
