package repository

import (
	"context"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (r *Repository) CreateTimeEntry(entry *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO time_entries (user_id, site_id, shift_id, activity_type, clock_in, clock_out, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{entry.UserID, entry.SiteID, entry.ShiftID, entry.ActivityType, entry.ClockIn, entry.ClockOut, entry.Note}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTimeEntryByID(id int64) (*domain.TimeEntry, error) {
	query := `
		SELECT user_id, site_id, shift_id, activity_type, clock_in, clock_out, note, created_at, version
		FROM time_entries WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry := &domain.TimeEntry{
		ID: id,
	}

	dst := []any{&entry.UserID, &entry.SiteID, &entry.ShiftID, &entry.ActivityType, &entry.ClockIn, &entry.ClockOut, &entry.Note, &entry.CreatedAt, &entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) GetTimeEntriesByUser(userID int64, from, to time.Time) ([]*domain.TimeEntry, error) {
	query := `
		SELECT id, site_id, shift_id, activity_type, clock_in, clock_out, note, created_at, version
		FROM time_entries
		WHERE user_id = $1 AND clock_in >= $2 AND clock_in < $3
		ORDER BY clock_in, id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{
			UserID: userID,
		}
		dst := []any{&entry.ID, &entry.SiteID, &entry.ShiftID, &entry.ActivityType, &entry.ClockIn, &entry.ClockOut, &entry.Note, &entry.CreatedAt, &entry.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetOpenTimeEntry returns the user's running entry (no clock-out yet), if any.
func (r *Repository) GetOpenTimeEntry(userID int64) (*domain.TimeEntry, error) {
	query := `
		SELECT id, site_id, shift_id, activity_type, clock_in, clock_out, note, created_at, version
		FROM time_entries
		WHERE user_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry := &domain.TimeEntry{
		UserID: userID,
	}

	dst := []any{&entry.ID, &entry.SiteID, &entry.ShiftID, &entry.ActivityType, &entry.ClockIn, &entry.ClockOut, &entry.Note, &entry.CreatedAt, &entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) UpdateTimeEntry(entry *domain.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET
			clock_out = $1,
			note = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.ClockOut, entry.Note, entry.ID, entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTimeEntry(id int64) error {
	query := `
		DELETE FROM time_entries WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
