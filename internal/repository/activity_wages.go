package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/wage"
)

// GetUserActivityWage returns the employee's hourly wage for one activity
// type, or nil when no such override exists.
func (r *Repository) GetUserActivityWage(userID int64, activity wage.ActivityType) (*float64, error) {
	query := `
		SELECT hourly_wage FROM user_activity_wages
		WHERE user_id = $1 AND activity_type = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var hourlyWage float64
	if err := r.dbpool.QueryRowContext(ctx, query, userID, activity).Scan(&hourlyWage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &hourlyWage, nil
}

func (r *Repository) GetUserActivityWages(userID int64) ([]*domain.UserActivityWage, error) {
	query := `
		SELECT id, activity_type, hourly_wage, created_at, version
		FROM user_activity_wages
		WHERE user_id = $1
		ORDER BY activity_type
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wages := make([]*domain.UserActivityWage, 0)
	for rows.Next() {
		w := &domain.UserActivityWage{
			UserID: userID,
		}
		dst := []any{&w.ID, &w.ActivityType, &w.HourlyWage, &w.CreatedAt, &w.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		wages = append(wages, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return wages, nil
}

// UpsertUserActivityWage creates or replaces the employee's wage for an
// activity type.
func (r *Repository) UpsertUserActivityWage(w *domain.UserActivityWage) error {
	query := `
		INSERT INTO user_activity_wages (user_id, activity_type, hourly_wage)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, activity_type)
		DO UPDATE SET hourly_wage = EXCLUDED.hourly_wage, version = user_activity_wages.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{w.UserID, w.ActivityType, w.HourlyWage}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt, &w.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUserActivityWage(userID int64, activity wage.ActivityType) error {
	query := `
		DELETE FROM user_activity_wages WHERE user_id = $1 AND activity_type = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, userID, activity)
	if err != nil {
		return err
	}

	return nil
}
