package domain

import (
	"context"
	"time"
)

// HomeContent is the singleton record backing the home page hero and CTA
// sections. At most one row exists; it is lazily created on the first
// authenticated fetch and never deleted.
type HomeContent struct {
	ID              int64
	HeroTitle       string
	HeroSubtitle    string
	HeroDescription string
	CTATitle        string
	CTASubtitle     string
}

// HeroImage is one entry of the ordered hero carousel.
type HeroImage struct {
	ID           int64
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}

// HomeStat is one ordered counter shown on the home page. Number is a
// display string ("10+", "98%"), not a numeric value.
type HomeStat struct {
	ID           int64
	Number       string
	Label        string
	Icon         string
	DisplayOrder int
	CreatedAt    time.Time
}

// StatIcons is the fixed set of icon names a HomeStat may reference.
var StatIcons = []string{
	"Award", "Users", "Sparkles", "Briefcase", "Camera", "Coffee",
	"Feather", "Globe", "Heart", "Lightbulb", "MapPin", "MessageSquare",
	"Monitor", "Palette", "PieChart", "Rocket", "Settings", "Shield",
	"Star", "Target", "TrendingUp", "Zap",
}

// ServicePreview is one ordered service teaser on the home page, carrying
// its own image slot.
type ServicePreview struct {
	ID           int64
	Title        string
	Description  string
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}

// HomePage is the aggregate the dashboard edits as a single unit: the
// content singleton plus the three ordered list collections.
type HomePage struct {
	Content         HomeContent
	HeroImages      []HeroImage
	Stats           []HomeStat
	ServicesPreview []ServicePreview
}

// HomePageRepository persists the home page aggregate.
//
// ReplaceLists overwrites the three list collections wholesale (delete all,
// reinsert) and upserts the content row, all inside a single transaction so
// an interrupted save cannot leave a collection empty.
type HomePageRepository interface {
	GetContent(ctx context.Context) (*HomeContent, error)
	InsertContent(ctx context.Context, content *HomeContent) error
	ListHeroImages(ctx context.Context) ([]HeroImage, error)
	ListStats(ctx context.Context) ([]HomeStat, error)
	ListServicePreviews(ctx context.Context) ([]ServicePreview, error)
	ReplaceLists(ctx context.Context, page *HomePage) error
	DeleteHeroImage(ctx context.Context, id int64) error
	DeleteStat(ctx context.Context, id int64) error
	DeleteServicePreview(ctx context.Context, id int64) error
}
