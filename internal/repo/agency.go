package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/travelflow/tripflow/internal/domain"
)

// AgencyRepo persists the single agency profile used for branding exports
// and document headers. The table holds exactly one row.
type AgencyRepo interface {
	// Get returns the agency profile, or the built-in default when the row
	// has never been written.
	Get(ctx context.Context) (domain.AgencyProfile, error)

	// Put replaces the agency profile.
	Put(ctx context.Context, profile domain.AgencyProfile) error
}

type pgAgencyRepo struct {
	db db
}

// NewAgencyRepo constructs an AgencyRepo backed by the provided db connection.
func NewAgencyRepo(db db) AgencyRepo {
	return &pgAgencyRepo{db: db}
}

func (r *pgAgencyRepo) Get(ctx context.Context) (domain.AgencyProfile, error) {
	const q = `SELECT name, logo_url, email, phone, website, primary_color FROM agency_profile WHERE id = 1`

	var p domain.AgencyProfile
	err := r.db.QueryRow(ctx, q).Scan(&p.Name, &p.LogoURL, &p.Email, &p.Phone, &p.Website, &p.PrimaryColor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultAgency(), nil
		}
		return domain.AgencyProfile{}, fmt.Errorf("repo.AgencyRepo.Get: %w", err)
	}
	return p, nil
}

func (r *pgAgencyRepo) Put(ctx context.Context, profile domain.AgencyProfile) error {
	const q = `
		INSERT INTO agency_profile (id, name, logo_url, email, phone, website, primary_color)
		VALUES (1, @name, @logo_url, @email, @phone, @website, @primary_color)
		ON CONFLICT (id) DO UPDATE
		SET name          = EXCLUDED.name,
		    logo_url      = EXCLUDED.logo_url,
		    email         = EXCLUDED.email,
		    phone         = EXCLUDED.phone,
		    website       = EXCLUDED.website,
		    primary_color = EXCLUDED.primary_color`

	args := pgx.NamedArgs{
		"name":          profile.Name,
		"logo_url":      profile.LogoURL,
		"email":         profile.Email,
		"phone":         profile.Phone,
		"website":       profile.Website,
		"primary_color": profile.PrimaryColor,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.AgencyRepo.Put: %w", err)
	}
	return nil
}
