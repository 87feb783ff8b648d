package repository

import (
	"context"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (r *Repository) CreateIncident(incident *domain.Incident) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO incidents (site_id, reporter_id, title, description, severity, status, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{incident.SiteID, incident.ReporterID, incident.Title, incident.Description, incident.Severity, incident.Status, incident.OccurredAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&incident.ID, &incident.CreatedAt, &incident.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetIncidentByID(id int64) (*domain.Incident, error) {
	query := `
		SELECT site_id, reporter_id, title, description, severity, status, occurred_at, created_at, version
		FROM incidents WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	incident := &domain.Incident{
		ID: id,
	}

	dst := []any{&incident.SiteID, &incident.ReporterID, &incident.Title, &incident.Description, &incident.Severity, &incident.Status, &incident.OccurredAt, &incident.CreatedAt, &incident.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return incident, nil
}

func (r *Repository) GetIncidentsBySite(siteID int64) ([]*domain.Incident, error) {
	query := `
		SELECT id, reporter_id, title, description, severity, status, occurred_at, created_at, version
		FROM incidents
		WHERE site_id = $1
		ORDER BY occurred_at DESC, id DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0)
	for rows.Next() {
		incident := &domain.Incident{
			SiteID: siteID,
		}
		dst := []any{&incident.ID, &incident.ReporterID, &incident.Title, &incident.Description, &incident.Severity, &incident.Status, &incident.OccurredAt, &incident.CreatedAt, &incident.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return incidents, nil
}

func (r *Repository) UpdateIncident(incident *domain.Incident) error {
	query := `
		UPDATE incidents
		SET
			title = $1,
			description = $2,
			severity = $3,
			status = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{incident.Title, incident.Description, incident.Severity, incident.Status, incident.ID, incident.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&incident.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteIncident(id int64) error {
	query := `
		DELETE FROM incidents WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
