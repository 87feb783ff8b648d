package repository

import (
	"context"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

// CreateShifts persists a generated shift batch in one transaction. Shifts
// whose (site, start time, title) already exist are skipped, so re-running
// generation over an overlapping date range does not duplicate rows. Returns
// the number of actually inserted shifts.
func (r *Repository) CreateShifts(shifts []domain.Shift) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shifts (site_id, title, description, location, start_time, end_time, required_employees, required_qualifications, status)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE NOT EXISTS (
			SELECT 1 FROM shifts WHERE site_id = $1 AND start_time = $5 AND title = $2
		)
	`

	inserted := 0
	for i := range shifts {
		qualifications, err := marshalStrings(shifts[i].RequiredQualifications)
		if err != nil {
			return 0, err
		}

		args := []any{
			shifts[i].SiteID,
			shifts[i].Title,
			shifts[i].Description,
			shifts[i].Location,
			shifts[i].StartTime,
			shifts[i].EndTime,
			shifts[i].RequiredEmployees,
			qualifications,
			shifts[i].Status,
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	query := `
		SELECT site_id, title, description, location, start_time, end_time, required_employees, required_qualifications, status, created_at, version
		FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	var qualifications []byte
	dst := []any{&shift.SiteID, &shift.Title, &shift.Description, &shift.Location, &shift.StartTime, &shift.EndTime, &shift.RequiredEmployees, &qualifications, &shift.Status, &shift.CreatedAt, &shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := unmarshalStrings(qualifications, &shift.RequiredQualifications); err != nil {
		return nil, err
	}

	return shift, nil
}

func (r *Repository) GetShiftsBySite(siteID int64, from, to time.Time) ([]*domain.Shift, error) {
	query := `
		SELECT id, title, description, location, start_time, end_time, required_employees, required_qualifications, status, created_at, version
		FROM shifts
		WHERE site_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, siteID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{
			SiteID: siteID,
		}
		var qualifications []byte
		dst := []any{&shift.ID, &shift.Title, &shift.Description, &shift.Location, &shift.StartTime, &shift.EndTime, &shift.RequiredEmployees, &qualifications, &shift.Status, &shift.CreatedAt, &shift.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := unmarshalStrings(qualifications, &shift.RequiredQualifications); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) UpdateShiftStatus(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, shift.Status, shift.ID, shift.Version).Scan(&shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShift(id int64) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
