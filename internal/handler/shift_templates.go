package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/planner"
	"github.com/wachplan-dev/wachplan/backend/internal/utils"
)

// GetPlannerCatalog lists the built-in shift patterns. These are not stored in
// the database, unlike the company-specific templates below.
func (h *Handler) GetPlannerCatalog(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Schichtmodell-Katalog abgerufen", planner.Templates())
}

func (h *Handler) GetAllShiftTemplates(w http.ResponseWriter, r *http.Request) {
	sts, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Schichtmodelle abgerufen", sts)
}

func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Shifts      []struct {
			Name           string  `json:"name" validate:"required"`
			StartTime      string  `json:"startTime" validate:"required"`
			EndTime        string  `json:"endTime" validate:"required"`
			RequiredStaff  int32   `json:"requiredStaff" validate:"required,gte=1"`
			ApplicableDays []int32 `json:"applicableDays" validate:"required,dive,gte=0,lte=6"`
		} `json:"shifts" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	st := &domain.ShiftTemplate{
		Name:        req.Name,
		Description: req.Description,
		Shifts:      make([]domain.ShiftTemplateShift, 0, len(req.Shifts)),
	}

	for _, shift := range req.Shifts {
		st.Shifts = append(st.Shifts, domain.ShiftTemplateShift{
			Name:           shift.Name,
			StartTime:      shift.StartTime,
			EndTime:        shift.EndTime,
			RequiredStaff:  shift.RequiredStaff,
			ApplicableDays: shift.ApplicableDays,
		})
	}

	if err := utils.ValidateShiftTemplateTimes(st); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "Schichtmodellname bereits vergeben")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Schichtmodell angelegt", st)
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	h.successResponse(w, r, "Schichtmodell abgerufen", st)
}

func (h *Handler) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}

	if err := h.repository.UpdateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "Schichtmodellname bereits vergeben")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Schichtmodell aktualisiert", st)
}

func (h *Handler) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if err := h.repository.DeleteShiftTemplate(st.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Schichtmodell gelöscht", nil)
}
