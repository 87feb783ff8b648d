package repository

import (
	"context"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (r *Repository) CreateSite(site *domain.Site) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO sites (name, address, description, required_qualifications, hourly_wage_override)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	qualifications, err := marshalStrings(site.RequiredQualifications)
	if err != nil {
		return err
	}

	args := []any{site.Name, site.Address, site.Description, qualifications, site.HourlyWageOverride}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&site.ID, &site.IsActive, &site.CreatedAt, &site.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSiteByID(id int64) (*domain.Site, error) {
	query := `
		SELECT name, address, description, required_qualifications, hourly_wage_override, is_active, created_at, version
		FROM sites WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	site := &domain.Site{
		ID: id,
	}

	var qualifications []byte
	dst := []any{&site.Name, &site.Address, &site.Description, &qualifications, &site.HourlyWageOverride, &site.IsActive, &site.CreatedAt, &site.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := unmarshalStrings(qualifications, &site.RequiredQualifications); err != nil {
		return nil, err
	}

	return site, nil
}

func (r *Repository) GetAllSites() ([]*domain.Site, error) {
	query := `
		SELECT id, name, address, description, required_qualifications, hourly_wage_override, is_active, created_at, version
		FROM sites
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		site := &domain.Site{}
		var qualifications []byte
		dst := []any{&site.ID, &site.Name, &site.Address, &site.Description, &qualifications, &site.HourlyWageOverride, &site.IsActive, &site.CreatedAt, &site.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := unmarshalStrings(qualifications, &site.RequiredQualifications); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}

func (r *Repository) UpdateSite(site *domain.Site) error {
	query := `
		UPDATE sites
		SET
			name = $1,
			address = $2,
			description = $3,
			required_qualifications = $4,
			hourly_wage_override = $5,
			is_active = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	qualifications, err := marshalStrings(site.RequiredQualifications)
	if err != nil {
		return err
	}

	args := []any{site.Name, site.Address, site.Description, qualifications, site.HourlyWageOverride, site.IsActive, site.ID, site.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&site.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSite(id int64) error {
	query := `
		DELETE FROM sites WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
