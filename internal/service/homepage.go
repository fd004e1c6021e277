package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minimindteam/Dash/internal/domain"
	"github.com/minimindteam/Dash/internal/editor"
)

// HomePageService owns the home page aggregate workflow: fetch with lazy
// singleton creation, save with pending-file resolution and transactional
// full-replace, and immediate per-item deletes.
type HomePageService struct {
	repo   domain.HomePageRepository
	images *ImageService
}

// NewHomePageService creates a new HomePageService.
func NewHomePageService(repo domain.HomePageRepository, images *ImageService) *HomePageService {
	return &HomePageService{repo: repo, images: images}
}

// Fetch returns the full aggregate. Reading never requires authentication.
// When the content singleton does not exist yet, an authenticated caller
// gets a freshly inserted empty row; an anonymous caller gets an in-memory
// placeholder and nothing is written.
func (s *HomePageService) Fetch(ctx context.Context, sess *domain.Session) (*domain.HomePage, error) {
	content, err := s.repo.GetContent(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		content = &domain.HomeContent{}
		if sess != nil {
			if err := s.repo.InsertContent(ctx, content); err != nil {
				return nil, fmt.Errorf("create default content: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("get content: %w", err)
	}

	heroImages, err := s.repo.ListHeroImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hero images: %w", err)
	}
	stats, err := s.repo.ListStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stats: %w", err)
	}
	previews, err := s.repo.ListServicePreviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service previews: %w", err)
	}

	return &domain.HomePage{
		Content:         *content,
		HeroImages:      heroImages,
		Stats:           stats,
		ServicesPreview: previews,
	}, nil
}

// Save persists the whole draft: pending files are uploaded first (one at a
// time; a failed upload aborts the save), then the content row is upserted
// and the three list collections replaced wholesale in one transaction with
// display_order recomputed from list position. Files uploaded before a
// later failure are not rolled back.
func (s *HomePageService) Save(ctx context.Context, sess *domain.Session, draft *editor.Draft) (*domain.HomePage, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}

	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	page := &domain.HomePage{Content: draft.Content}

	// Keep the content row a singleton: a draft without a persisted id
	// adopts the existing row instead of inserting a second one.
	if page.Content.ID == 0 {
		existing, err := s.repo.GetContent(ctx)
		switch {
		case err == nil:
			page.Content.ID = existing.ID
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, fmt.Errorf("get content: %w", err)
		}
	}

	for i, img := range draft.HeroImages {
		url, err := s.resolveImage(ctx, sess, img)
		if err != nil {
			return nil, fmt.Errorf("resolve hero image %d: %w", i, err)
		}
		page.HeroImages = append(page.HeroImages, domain.HeroImage{
			ImageURL:     url,
			DisplayOrder: i + 1,
		})
	}

	for i, stat := range draft.Stats {
		page.Stats = append(page.Stats, domain.HomeStat{
			Number:       stat.Number,
			Label:        stat.Label,
			Icon:         stat.Icon,
			DisplayOrder: i + 1,
		})
	}

	for i, preview := range draft.ServicesPreview {
		url, err := s.resolveImage(ctx, sess, preview.Image)
		if err != nil {
			return nil, fmt.Errorf("resolve service preview image %d: %w", i, err)
		}
		page.ServicesPreview = append(page.ServicesPreview, domain.ServicePreview{
			Title:        preview.Title,
			Description:  preview.Description,
			ImageURL:     url,
			DisplayOrder: i + 1,
		})
	}

	if err := s.repo.ReplaceLists(ctx, page); err != nil {
		return nil, fmt.Errorf("persist home page: %w", err)
	}
	return page, nil
}

// DeleteHeroImage removes one persisted hero image immediately, independent
// of any pending save.
func (s *HomePageService) DeleteHeroImage(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.repo.DeleteHeroImage(ctx, id)
}

// DeleteStat removes one persisted stat immediately.
func (s *HomePageService) DeleteStat(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.repo.DeleteStat(ctx, id)
}

// DeleteServicePreview removes one persisted service preview immediately.
func (s *HomePageService) DeleteServicePreview(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.repo.DeleteServicePreview(ctx, id)
}

// resolveImage turns an ImageSource into a plain URL, uploading the pending
// file if one is attached. A file-typed source without a chosen file falls
// back to its URL value.
func (s *HomePageService) resolveImage(ctx context.Context, sess *domain.Session, img editor.ImageSource) (string, error) {
	if img.Type != editor.SourceFile || img.File == nil {
		return img.URL, nil
	}

	_, url, err := s.images.Upload(ctx, sess, img.File.Name, img.File.ContentType, img.File.Data)
	if err != nil {
		return "", fmt.Errorf("upload pending file: %w", err)
	}
	return url, nil
}

var statIconRule = buildIconRule()

func buildIconRule() validation.Rule {
	icons := make([]any, 0, len(domain.StatIcons)+1)
	icons = append(icons, "") // no icon chosen
	for _, icon := range domain.StatIcons {
		icons = append(icons, icon)
	}
	return validation.In(icons...)
}

func validateDraft(draft *editor.Draft) error {
	for _, stat := range draft.Stats {
		err := validation.Errors{
			"number": validation.Validate(stat.Number, validation.Required),
			"label":  validation.Validate(stat.Label, validation.Required),
			"icon":   validation.Validate(stat.Icon, statIconRule),
		}.Filter()
		if err != nil {
			return fmt.Errorf("%w: stat: %s", domain.ErrInvalidInput, err)
		}
	}

	for _, preview := range draft.ServicesPreview {
		if err := validation.Validate(preview.Title, validation.Required); err != nil {
			return fmt.Errorf("%w: service preview title: %s", domain.ErrInvalidInput, err)
		}
	}
	return nil
}
