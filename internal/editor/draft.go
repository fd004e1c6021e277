// Package editor holds the in-memory editable copy of the home page
// aggregate. All mutators are pure and synchronous: they operate only on
// the draft, locate items by their draft identifier, and copy-on-write the
// containing list so sibling items are never touched. Nothing here talks
// to the network or the store.
package editor

import (
	"github.com/google/uuid"
	"github.com/minimindteam/Dash/internal/domain"
)

// SourceType tags an ImageSource as an already-hosted URL or a locally
// chosen file pending upload.
type SourceType string

const (
	SourceURL  SourceType = "url"
	SourceFile SourceType = "file"
)

// PendingFile is a locally chosen binary awaiting upload.
type PendingFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ImageSource is a not-yet-resolved image: either an existing URL or a
// pending local file. It must be resolved to a plain URL before any
// persistence call.
type ImageSource struct {
	DraftID string     // locally generated, stable across edits
	ItemID  int64      // persisted row id; 0 for items the store has never seen
	Type    SourceType
	URL     string
	File    *PendingFile
}

// Stat is an editable copy of one home page counter.
type Stat struct {
	DraftID string
	ItemID  int64
	Number  string
	Label   string
	Icon    string
}

// ServicePreview is an editable copy of one service teaser, carrying its
// own image slot.
type ServicePreview struct {
	DraftID     string
	ItemID      int64
	Title       string
	Description string
	Image       ImageSource
}

// Draft is the full local edit state for the home page aggregate.
type Draft struct {
	Content         domain.HomeContent
	HeroImages      []ImageSource
	Stats           []Stat
	ServicesPreview []ServicePreview
}

// NewDraft builds an editable copy of a fetched home page. Every item gets
// a fresh draft id; persisted ids are kept alongside so per-item deletes
// can reach the store.
func NewDraft(page *domain.HomePage) *Draft {
	d := &Draft{Content: page.Content}

	for _, img := range page.HeroImages {
		d.HeroImages = append(d.HeroImages, ImageSource{
			DraftID: uuid.NewString(),
			ItemID:  img.ID,
			Type:    SourceURL,
			URL:     img.ImageURL,
		})
	}
	for _, s := range page.Stats {
		d.Stats = append(d.Stats, Stat{
			DraftID: uuid.NewString(),
			ItemID:  s.ID,
			Number:  s.Number,
			Label:   s.Label,
			Icon:    s.Icon,
		})
	}
	for _, p := range page.ServicesPreview {
		d.ServicesPreview = append(d.ServicesPreview, ServicePreview{
			DraftID:     uuid.NewString(),
			ItemID:      p.ID,
			Title:       p.Title,
			Description: p.Description,
			Image: ImageSource{
				DraftID: uuid.NewString(),
				Type:    SourceURL,
				URL:     p.ImageURL,
			},
		})
	}
	return d
}

// AddHeroImage appends an empty URL-typed image slot and returns its draft id.
func (d *Draft) AddHeroImage() string {
	img := ImageSource{DraftID: uuid.NewString(), Type: SourceURL}
	d.HeroImages = append(d.HeroImages, img)
	return img.DraftID
}

// RemoveHeroImage drops the item from the draft. Reports whether the item
// existed; deleting the persisted row is the caller's job.
func (d *Draft) RemoveHeroImage(draftID string) bool {
	images, ok := removeByID(d.HeroImages, draftID, func(img ImageSource) string { return img.DraftID })
	d.HeroImages = images
	return ok
}

// SetHeroImageType switches an image slot between url and file. Switching
// to url discards any pending file; switching to file keeps the previously
// entered URL until a file is actually chosen.
func (d *Draft) SetHeroImageType(draftID string, t SourceType) {
	d.HeroImages = updateByID(d.HeroImages, draftID,
		func(img ImageSource) string { return img.DraftID },
		func(img ImageSource) ImageSource { return setSourceType(img, t) })
}

// SetHeroImageURL updates the URL of one image slot.
func (d *Draft) SetHeroImageURL(draftID, url string) {
	d.HeroImages = updateByID(d.HeroImages, draftID,
		func(img ImageSource) string { return img.DraftID },
		func(img ImageSource) ImageSource { img.URL = url; return img })
}

// AttachHeroImageFile sets the pending file of one image slot.
func (d *Draft) AttachHeroImageFile(draftID string, file PendingFile) {
	d.HeroImages = updateByID(d.HeroImages, draftID,
		func(img ImageSource) string { return img.DraftID },
		func(img ImageSource) ImageSource { img.File = &file; return img })
}

// AddStat appends an empty stat and returns its draft id.
func (d *Draft) AddStat() string {
	s := Stat{DraftID: uuid.NewString()}
	d.Stats = append(d.Stats, s)
	return s.DraftID
}

// RemoveStat drops the stat from the draft.
func (d *Draft) RemoveStat(draftID string) bool {
	stats, ok := removeByID(d.Stats, draftID, func(s Stat) string { return s.DraftID })
	d.Stats = stats
	return ok
}

func (d *Draft) SetStatNumber(draftID, number string) {
	d.Stats = updateByID(d.Stats, draftID,
		func(s Stat) string { return s.DraftID },
		func(s Stat) Stat { s.Number = number; return s })
}

func (d *Draft) SetStatLabel(draftID, label string) {
	d.Stats = updateByID(d.Stats, draftID,
		func(s Stat) string { return s.DraftID },
		func(s Stat) Stat { s.Label = label; return s })
}

func (d *Draft) SetStatIcon(draftID, icon string) {
	d.Stats = updateByID(d.Stats, draftID,
		func(s Stat) string { return s.DraftID },
		func(s Stat) Stat { s.Icon = icon; return s })
}

// AddServicePreview appends an empty service teaser and returns its draft id.
func (d *Draft) AddServicePreview() string {
	p := ServicePreview{
		DraftID: uuid.NewString(),
		Image:   ImageSource{DraftID: uuid.NewString(), Type: SourceURL},
	}
	d.ServicesPreview = append(d.ServicesPreview, p)
	return p.DraftID
}

// RemoveServicePreview drops the teaser from the draft.
func (d *Draft) RemoveServicePreview(draftID string) bool {
	previews, ok := removeByID(d.ServicesPreview, draftID, func(p ServicePreview) string { return p.DraftID })
	d.ServicesPreview = previews
	return ok
}

func (d *Draft) SetServicePreviewTitle(draftID, title string) {
	d.ServicesPreview = updateByID(d.ServicesPreview, draftID,
		func(p ServicePreview) string { return p.DraftID },
		func(p ServicePreview) ServicePreview { p.Title = title; return p })
}

func (d *Draft) SetServicePreviewDescription(draftID, description string) {
	d.ServicesPreview = updateByID(d.ServicesPreview, draftID,
		func(p ServicePreview) string { return p.DraftID },
		func(p ServicePreview) ServicePreview { p.Description = description; return p })
}

// SetServicePreviewImageType switches the teaser's image slot between url
// and file, with the same clearing rules as hero images.
func (d *Draft) SetServicePreviewImageType(draftID string, t SourceType) {
	d.ServicesPreview = updateByID(d.ServicesPreview, draftID,
		func(p ServicePreview) string { return p.DraftID },
		func(p ServicePreview) ServicePreview { p.Image = setSourceType(p.Image, t); return p })
}

func (d *Draft) SetServicePreviewImageURL(draftID, url string) {
	d.ServicesPreview = updateByID(d.ServicesPreview, draftID,
		func(p ServicePreview) string { return p.DraftID },
		func(p ServicePreview) ServicePreview { p.Image.URL = url; return p })
}

func (d *Draft) AttachServicePreviewImageFile(draftID string, file PendingFile) {
	d.ServicesPreview = updateByID(d.ServicesPreview, draftID,
		func(p ServicePreview) string { return p.DraftID },
		func(p ServicePreview) ServicePreview { p.Image.File = &file; return p })
}

func setSourceType(img ImageSource, t SourceType) ImageSource {
	if img.Type == t {
		return img
	}
	img.Type = t
	if t == SourceURL {
		img.File = nil
	}
	return img
}

// updateByID returns a new slice with exactly the matched item replaced by
// apply(item); all other items are carried over untouched.
func updateByID[T any](items []T, id string, key func(T) string, apply func(T) T) []T {
	updated := make([]T, len(items))
	for i, item := range items {
		if key(item) == id {
			updated[i] = apply(item)
		} else {
			updated[i] = item
		}
	}
	return updated
}

// removeByID returns a new slice without the matched item and whether a
// match was found.
func removeByID[T any](items []T, id string, key func(T) string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	found := false
	for _, item := range items {
		if key(item) == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, found
}
