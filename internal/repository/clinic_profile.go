package repository

import (
	"context"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
)

func (r *Repository) GetClinicProfile() (*domain.ClinicProfile, error) {
	query := `
		SELECT name, address, phone, email, updated_at, version
		FROM clinic_profile WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	profile := &domain.ClinicProfile{}
	dst := []any{&profile.Name, &profile.Address, &profile.Phone, &profile.Email, &profile.UpdatedAt, &profile.Version}
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(dst...); err != nil {
		return nil, err
	}

	return profile, nil
}

func (r *Repository) UpdateClinicProfile(profile *domain.ClinicProfile) error {
	query := `
		UPDATE clinic_profile
		SET
			name = $1,
			address = $2,
			phone = $3,
			email = $4,
			updated_at = now(),
			version = version + 1
		WHERE id = 1 AND version = $5
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{profile.Name, profile.Address, profile.Phone, profile.Email, profile.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&profile.UpdatedAt, &profile.Version); err != nil {
		return err
	}

	return nil
}
