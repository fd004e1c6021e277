package domain

import (
	"context"
	"time"
)

// TeamMember is one entry on the team page.
type TeamMember struct {
	ID          int64
	Name        string
	Designation string
	ImageURL    string
	Bio         string
	Specialties []string
	SocialURLA  string
	SocialURLB  string
	SocialURLC  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamRepository defines persistence operations for team members.
type TeamRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	GetByID(ctx context.Context, id int64) (*TeamMember, error)
	List(ctx context.Context) ([]TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id int64) error
}
