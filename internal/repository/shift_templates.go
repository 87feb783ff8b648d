package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.id,
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.name,
			sts.start_time,
			sts.end_time,
			sts.required_staff,
			stsd.day
		FROM shift_templates st
		LEFT JOIN shift_template_shifts sts ON st.id = sts.template_id
		LEFT JOIN shift_template_shift_days stsd ON sts.id = stsd.shift_id
		ORDER BY st.id, sts.id, stsd.day
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templatesMap := make(map[int64]*domain.ShiftTemplate)
	shiftsMap := make(map[int64]map[int64]*domain.ShiftTemplateShift) // templateID -> shiftID -> shift
	shiftOrder := make(map[int64][]int64)                             // templateID -> shiftIDs in query order
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID          int64
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			ShiftID       sql.NullInt64
			ShiftName     sql.NullString
			StartTime     sql.NullString
			EndTime       sql.NullString
			RequiredStaff sql.NullInt32
			Day           sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.ShiftName,
			&row.StartTime,
			&row.EndTime,
			&row.RequiredStaff,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := templatesMap[row.ID]; !exists {
			template := &domain.ShiftTemplate{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				CreatedAt:   row.CreatedAt,
				Version:     row.Version,
			}
			templatesMap[row.ID] = template
			shiftsMap[row.ID] = make(map[int64]*domain.ShiftTemplateShift)
			order = append(order, row.ID)
		}

		// A template without shifts still shows up through the left join.
		if !row.ShiftID.Valid {
			continue
		}

		shift, exists := shiftsMap[row.ID][row.ShiftID.Int64]
		if !exists {
			shift = &domain.ShiftTemplateShift{
				ID:             row.ShiftID.Int64,
				Name:           row.ShiftName.String,
				StartTime:      row.StartTime.String,
				EndTime:        row.EndTime.String,
				RequiredStaff:  row.RequiredStaff.Int32,
				ApplicableDays: make([]int32, 0),
			}
			shiftsMap[row.ID][row.ShiftID.Int64] = shift
			shiftOrder[row.ID] = append(shiftOrder[row.ID], row.ShiftID.Int64)
		}

		if !row.Day.Valid {
			continue
		}

		shift.ApplicableDays = append(shift.ApplicableDays, row.Day.Int32)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Assemble the result in query order.
	templates := make([]*domain.ShiftTemplate, 0, len(order))
	for _, templateID := range order {
		template := templatesMap[templateID]
		template.Shifts = make([]domain.ShiftTemplateShift, 0, len(shiftOrder[templateID]))
		for _, shiftID := range shiftOrder[templateID] {
			template.Shifts = append(template.Shifts, *shiftsMap[templateID][shiftID])
		}
		templates = append(templates, template)
	}

	return templates, nil
}

func (r *Repository) CreateShiftTemplate(template *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO shift_templates (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, template.Name, template.Description).Scan(&template.ID, &template.CreatedAt, &template.Version); err != nil {
		return err
	}

	for i := range template.Shifts {
		query = `
			INSERT INTO shift_template_shifts (template_id, name, start_time, end_time, required_staff)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		params := []any{template.ID, template.Shifts[i].Name, template.Shifts[i].StartTime, template.Shifts[i].EndTime, template.Shifts[i].RequiredStaff}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&template.Shifts[i].ID); err != nil {
			return err
		}

		for _, day := range template.Shifts[i].ApplicableDays {
			query = `
				INSERT INTO shift_template_shift_days (shift_id, day)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, query, template.Shifts[i].ID, day); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShiftTemplate(id int64) (*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.name,
			sts.start_time,
			sts.end_time,
			sts.required_staff,
			stsd.day
		FROM shift_templates st
		LEFT JOIN shift_template_shifts sts ON st.id = sts.template_id
		LEFT JOIN shift_template_shift_days stsd ON sts.id = stsd.shift_id
		WHERE st.id = $1
		ORDER BY sts.id, stsd.day
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	template := &domain.ShiftTemplate{
		ID: id,
	}
	shiftsMap := make(map[int64]*domain.ShiftTemplateShift)
	shiftOrder := make([]int64, 0)
	found := false

	for rows.Next() {
		var row struct {
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			ShiftID       sql.NullInt64
			ShiftName     sql.NullString
			StartTime     sql.NullString
			EndTime       sql.NullString
			RequiredStaff sql.NullInt32
			Day           sql.NullInt32
		}

		dst := []any{
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.ShiftID,
			&row.ShiftName,
			&row.StartTime,
			&row.EndTime,
			&row.RequiredStaff,
			&row.Day,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			template.Name = row.Name
			template.Description = row.Description
			template.CreatedAt = row.CreatedAt
			template.Version = row.Version
			found = true
		}

		if !row.ShiftID.Valid {
			continue
		}

		shift, exists := shiftsMap[row.ShiftID.Int64]
		if !exists {
			shift = &domain.ShiftTemplateShift{
				ID:             row.ShiftID.Int64,
				Name:           row.ShiftName.String,
				StartTime:      row.StartTime.String,
				EndTime:        row.EndTime.String,
				RequiredStaff:  row.RequiredStaff.Int32,
				ApplicableDays: make([]int32, 0),
			}
			shiftsMap[row.ShiftID.Int64] = shift
			shiftOrder = append(shiftOrder, row.ShiftID.Int64)
		}

		if !row.Day.Valid {
			continue
		}

		shift.ApplicableDays = append(shift.ApplicableDays, row.Day.Int32)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	template.Shifts = make([]domain.ShiftTemplateShift, 0, len(shiftOrder))
	for _, shiftID := range shiftOrder {
		template.Shifts = append(template.Shifts, *shiftsMap[shiftID])
	}

	return template, nil
}

func (r *Repository) UpdateShiftTemplate(template *domain.ShiftTemplate) error {
	query := `
		UPDATE shift_templates
		SET
			name = $1,
			description = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{template.Name, template.Description, template.ID, template.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&template.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftTemplate(id int64) error {
	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
