package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageService stores uploaded images and derives the public URLs the site
// embeds. Uploaded objects are never garbage-collected: an image uploaded
// for a save that later fails stays in the store as an accepted cost.
type ImageService struct {
	images  domain.StoredImageRepository
	files   domain.FileStore
	baseURL string
}

// NewImageService creates a new ImageService. baseURL is the externally
// reachable prefix under which /images/{key} is served.
func NewImageService(images domain.StoredImageRepository, files domain.FileStore, baseURL string) *ImageService {
	return &ImageService{
		images:  images,
		files:   files,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload validates and stores an image, returning its metadata and public
// URL. Requires an authenticated session.
func (s *ImageService) Upload(ctx context.Context, sess *domain.Session, filename, contentType string, data []byte) (*domain.StoredImage, string, error) {
	if sess == nil {
		return nil, "", domain.ErrUnauthenticated
	}

	if !allowedImageTypes[contentType] {
		return nil, "", fmt.Errorf("%w: only JPEG, PNG, and WebP images are accepted", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if len(data) > maxImageSize {
		return nil, "", fmt.Errorf("%w: image exceeds 10MB limit", domain.ErrInvalidInput)
	}

	key, err := generateStorageKey(filename)
	if err != nil {
		return nil, "", fmt.Errorf("generate storage key: %w", err)
	}

	if err := s.files.Save(ctx, key, data); err != nil {
		return nil, "", fmt.Errorf("save file: %w", err)
	}

	image := &domain.StoredImage{
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		StorageKey:  key,
	}
	if err := s.images.Create(ctx, image); err != nil {
		// Best-effort cleanup of the stored bytes.
		s.files.Delete(ctx, key)
		return nil, "", fmt.Errorf("create image record: %w", err)
	}

	return image, s.PublicURL(key), nil
}

// PublicURL returns the durably fetchable URL for a storage key.
func (s *ImageService) PublicURL(key string) string {
	return s.baseURL + "/images/" + key
}

// GetFile returns the image bytes and content type for public serving.
func (s *ImageService) GetFile(ctx context.Context, key string) ([]byte, string, error) {
	image, err := s.images.GetByKey(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("get image: %w", err)
	}

	data, err := s.files.Get(ctx, image.StorageKey)
	if err != nil {
		return nil, "", fmt.Errorf("get file: %w", err)
	}

	return data, image.ContentType, nil
}

// List returns all stored image metadata, newest first.
func (s *ImageService) List(ctx context.Context, sess *domain.Session) ([]domain.StoredImage, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.images.List(ctx)
}

// Delete removes an image and its stored bytes.
func (s *ImageService) Delete(ctx context.Context, sess *domain.Session, key string) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}

	if err := s.files.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if err := s.images.DeleteByKey(ctx, key); err != nil {
		return fmt.Errorf("delete image record: %w", err)
	}
	return nil
}

// generateStorageKey builds a unique key from a millisecond timestamp and a
// random suffix, preserving the original extension so content sniffers and
// CDNs behave.
func generateStorageKey(filename string) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}
