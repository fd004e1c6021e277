package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minimindteam/Dash/internal/domain"
)

// ReviewService manages client reviews and the counters on the public
// reviews page. Reviews arrive unapproved; only approved ones are served
// publicly.
type ReviewService struct {
	reviews domain.ReviewRepository
	stats   domain.ReviewsStatRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews domain.ReviewRepository, stats domain.ReviewsStatRepository) *ReviewService {
	return &ReviewService{reviews: reviews, stats: stats}
}

// Submit accepts a review from the public site. It starts unapproved.
func (s *ReviewService) Submit(ctx context.Context, review *domain.Review) error {
	if err := validateReview(review); err != nil {
		return err
	}
	review.Approved = false
	return s.reviews.Create(ctx, review)
}

// ListPublic returns approved reviews only.
func (s *ReviewService) ListPublic(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx, true)
}

// ListAdmin returns every review, approved or not.
func (s *ReviewService) ListAdmin(ctx context.Context, sess *domain.Session) ([]domain.Review, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.reviews.List(ctx, false)
}

// Update overwrites a review.
func (s *ReviewService) Update(ctx context.Context, sess *domain.Session, review *domain.Review) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateReview(review); err != nil {
		return err
	}
	return s.reviews.Update(ctx, review)
}

// SetApproved flips a review's approval flag.
func (s *ReviewService) SetApproved(ctx context.Context, sess *domain.Session, id int64, approved bool) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.reviews.SetApproved(ctx, id, approved)
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.reviews.Delete(ctx, id)
}

// ListStats returns the ordered reviews-page counters. Public.
func (s *ReviewService) ListStats(ctx context.Context) ([]domain.ReviewsStat, error) {
	return s.stats.List(ctx)
}

// CreateStat adds a reviews-page counter.
func (s *ReviewService) CreateStat(ctx context.Context, sess *domain.Session, stat *domain.ReviewsStat) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateReviewsStat(stat); err != nil {
		return err
	}
	return s.stats.Create(ctx, stat)
}

// UpdateStat overwrites a reviews-page counter.
func (s *ReviewService) UpdateStat(ctx context.Context, sess *domain.Session, stat *domain.ReviewsStat) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateReviewsStat(stat); err != nil {
		return err
	}
	return s.stats.Update(ctx, stat)
}

// DeleteStat removes a reviews-page counter.
func (s *ReviewService) DeleteStat(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.stats.Delete(ctx, id)
}

func validateReview(review *domain.Review) error {
	err := validation.Errors{
		"name":   validation.Validate(review.Name, validation.Required),
		"rating": validation.Validate(review.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		"review": validation.Validate(review.Review, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}

func validateReviewsStat(stat *domain.ReviewsStat) error {
	err := validation.Errors{
		"number": validation.Validate(stat.Number, validation.Required),
		"label":  validation.Validate(stat.Label, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}
