package domain

import (
	"context"
	"time"
)

// Review is a client testimonial. Reviews arrive unapproved and only show
// on the public site once an admin approves them.
type Review struct {
	ID          int64
	Name        string
	Designation string
	Company     string
	CompanyURL  string
	Project     string
	Rating      int
	Review      string
	ImageURL    string
	Approved    bool
	CreatedAt   time.Time
}

// ReviewsStat is one ordered counter shown on the public reviews page.
type ReviewsStat struct {
	ID        int64
	Number    string
	Label     string
	SortOrder int
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	List(ctx context.Context, approvedOnly bool) ([]Review, error)
	Update(ctx context.Context, review *Review) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

// ReviewsStatRepository defines persistence operations for review counters.
type ReviewsStatRepository interface {
	Create(ctx context.Context, stat *ReviewsStat) error
	List(ctx context.Context) ([]ReviewsStat, error)
	Update(ctx context.Context, stat *ReviewsStat) error
	Delete(ctx context.Context, id int64) error
}
