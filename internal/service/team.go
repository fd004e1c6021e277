package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minimindteam/Dash/internal/domain"
)

// TeamService manages team member entries.
type TeamService struct {
	team domain.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(team domain.TeamRepository) *TeamService {
	return &TeamService{team: team}
}

// List returns all team members. Public: the site renders the team page
// from the same data.
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.List(ctx)
}

// Create adds a team member.
func (s *TeamService) Create(ctx context.Context, sess *domain.Session, member *domain.TeamMember) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateTeamMember(member); err != nil {
		return err
	}
	return s.team.Create(ctx, member)
}

// Update overwrites a team member.
func (s *TeamService) Update(ctx context.Context, sess *domain.Session, member *domain.TeamMember) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if err := validateTeamMember(member); err != nil {
		return err
	}
	return s.team.Update(ctx, member)
}

// Delete removes a team member.
func (s *TeamService) Delete(ctx context.Context, sess *domain.Session, id int64) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return s.team.Delete(ctx, id)
}

func validateTeamMember(member *domain.TeamMember) error {
	err := validation.Errors{
		"name":        validation.Validate(member.Name, validation.Required),
		"designation": validation.Validate(member.Designation, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return nil
}
