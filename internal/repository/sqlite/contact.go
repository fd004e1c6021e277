package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minimindteam/Dash/internal/domain"
)

// contactInfoRepo implements domain.ContactInfoRepository using SQLite.
// The table holds at most one row with id = 1.
type contactInfoRepo struct {
	db *sql.DB
}

func (r *contactInfoRepo) Get(ctx context.Context) (*domain.ContactInfo, error) {
	info := &domain.ContactInfo{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, phone, address, business_hours, facebook, twitter, linkedin, instagram
		 FROM contact_info WHERE id = 1`,
	).Scan(&info.ID, &info.Email, &info.Phone, &info.Address, &info.BusinessHours,
		&info.Facebook, &info.Twitter, &info.LinkedIn, &info.Instagram)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return info, nil
}

func (r *contactInfoRepo) Upsert(ctx context.Context, info *domain.ContactInfo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_info (id, email, phone, address, business_hours, facebook, twitter, linkedin, instagram)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			phone = excluded.phone,
			address = excluded.address,
			business_hours = excluded.business_hours,
			facebook = excluded.facebook,
			twitter = excluded.twitter,
			linkedin = excluded.linkedin,
			instagram = excluded.instagram`,
		info.Email, info.Phone, info.Address, info.BusinessHours,
		info.Facebook, info.Twitter, info.LinkedIn, info.Instagram,
	)
	if err != nil {
		return fmt.Errorf("upsert contact info: %w", err)
	}
	info.ID = 1
	return nil
}
