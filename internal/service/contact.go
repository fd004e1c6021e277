package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/minimindteam/Dash/internal/domain"
)

// ContactService manages the contact info singleton.
type ContactService struct {
	repo domain.ContactInfoRepository
}

// NewContactService creates a new ContactService.
func NewContactService(repo domain.ContactInfoRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Get returns the current contact info. Before the first update an empty
// record is returned rather than an error so the public page can render.
func (s *ContactService) Get(ctx context.Context) (*domain.ContactInfo, error) {
	info, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ContactInfo{ID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Update replaces the contact info wholesale.
func (s *ContactService) Update(ctx context.Context, sess *domain.Session, info *domain.ContactInfo) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	err := validation.Errors{
		"email": validation.Validate(info.Email, validation.Required, is.EmailFormat),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	info.ID = 1
	return s.repo.Upsert(ctx, info)
}
