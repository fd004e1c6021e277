package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minimindteam/Dash/internal/domain"
)

// teamRepo implements domain.TeamRepository using SQLite.
type teamRepo struct {
	db *sql.DB
}

func (r *teamRepo) Create(ctx context.Context, member *domain.TeamMember) error {
	specialties, err := marshalStrings(member.Specialties)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (name, designation, image_url, bio, specialties, social_url_a, social_url_b, social_url_c, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		member.Name, member.Designation, member.ImageURL, member.Bio, specialties,
		member.SocialURLA, member.SocialURLB, member.SocialURLC, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get member id: %w", err)
	}
	member.ID = id
	member.CreatedAt = now
	member.UpdatedAt = now
	return nil
}

func (r *teamRepo) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	var specialties string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, designation, image_url, bio, specialties, social_url_a, social_url_b, social_url_c, created_at, updated_at
		 FROM team_members WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Designation, &m.ImageURL, &m.Bio, &specialties,
		&m.SocialURLA, &m.SocialURLB, &m.SocialURLC, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}

	if m.Specialties, err = unmarshalStrings(specialties); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *teamRepo) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, designation, image_url, bio, specialties, social_url_a, social_url_b, social_url_c, created_at, updated_at
		 FROM team_members ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		var specialties string
		if err := rows.Scan(&m.ID, &m.Name, &m.Designation, &m.ImageURL, &m.Bio, &specialties,
			&m.SocialURLA, &m.SocialURLB, &m.SocialURLC, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		if m.Specialties, err = unmarshalStrings(specialties); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *teamRepo) Update(ctx context.Context, member *domain.TeamMember) error {
	specialties, err := marshalStrings(member.Specialties)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET name = ?, designation = ?, image_url = ?, bio = ?, specialties = ?, social_url_a = ?, social_url_b = ?, social_url_c = ?, updated_at = ?
		 WHERE id = ?`,
		member.Name, member.Designation, member.ImageURL, member.Bio, specialties,
		member.SocialURLA, member.SocialURLB, member.SocialURLC, now, member.ID,
	)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	member.UpdatedAt = now
	return nil
}

func (r *teamRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
