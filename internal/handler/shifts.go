package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/planner"
)

const dateLayout = "2006-01-02"

// parseTimeRange reads the optional from/to query parameters (YYYY-MM-DD).
func parseTimeRange(r *http.Request, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from, to := defaultFrom, defaultTo

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("ungültiges Datum %q", raw)
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("ungültiges Datum %q", raw)
		}
		to = parsed
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.New("Das Enddatum muss nach dem Anfangsdatum liegen")
	}

	return from, to, nil
}

func (h *Handler) GetSiteShifts(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	now := time.Now()
	from, to, err := parseTimeRange(r, now.AddDate(0, 0, -7), now.AddDate(0, 1, 0))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetShiftsBySite(site.ID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Schichten abgerufen", shifts)
}

type generateShiftsRequest struct {
	TemplateID    string `json:"templateID"`
	RequiredStaff int    `json:"requiredStaff" validate:"omitempty,gt=0"`
	Shifts        []struct {
		Name          string `json:"name" validate:"required"`
		StartTime     string `json:"startTime" validate:"required"`
		EndTime       string `json:"endTime" validate:"required"`
		RequiredStaff int    `json:"requiredStaff" validate:"required,gt=0"`
		Days          []int  `json:"days" validate:"omitempty,dive,gte=0,lte=6"`
	} `json:"shifts" validate:"omitempty,dive"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	DaysAhead int    `json:"daysAhead" validate:"omitempty,gt=0"`
}

// buildPlannerOptions turns a generation request into planner options. An
// explicit shift list wins over a template reference.
func (h *Handler) buildPlannerOptions(site *domain.Site, req *generateShiftsRequest) (planner.Options, *time.Time, error) {
	var source planner.Source
	switch {
	case len(req.Shifts) > 0:
		definitions := make([]planner.ShiftDefinition, len(req.Shifts))
		for i, s := range req.Shifts {
			definitions[i] = planner.ShiftDefinition{
				Name:          s.Name,
				StartTime:     s.StartTime,
				EndTime:       s.EndTime,
				RequiredStaff: s.RequiredStaff,
				Days:          s.Days,
			}
		}
		source = planner.ExplicitShifts{Shifts: definitions}
	case req.TemplateID != "":
		source = planner.TemplateRef{TemplateID: req.TemplateID, RequiredStaff: req.RequiredStaff}
	default:
		return planner.Options{}, nil, errors.New("Es muss entweder ein Schichtmodell oder eine Schichtliste angegeben werden")
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
		if err != nil {
			return planner.Options{}, nil, fmt.Errorf("ungültiges Anfangsdatum %q", req.StartDate)
		}
		startDate = parsed
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.Local)

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.EndDate, time.Local)
		if err != nil {
			return planner.Options{}, nil, fmt.Errorf("ungültiges Enddatum %q", req.EndDate)
		}
		if !parsed.After(startDate) {
			return planner.Options{}, nil, errors.New("Das Enddatum muss nach dem Anfangsdatum liegen")
		}
		endDate = &parsed
	}

	daysAhead := req.DaysAhead
	if endDate != nil {
		daysAhead = int(endDate.Sub(startDate).Hours()+23) / 24
	}
	if daysAhead > h.config.Planner.MaxDaysAhead {
		return planner.Options{}, nil, fmt.Errorf("Der Planungszeitraum darf %d Tage nicht überschreiten", h.config.Planner.MaxDaysAhead)
	}

	opts := planner.Options{
		SiteID:                 site.ID,
		SiteName:               site.Name,
		Source:                 source,
		StartDate:              startDate,
		DaysAhead:              req.DaysAhead,
		RequiredQualifications: site.RequiredQualifications,
	}

	return opts, endDate, nil
}

func (h *Handler) generateShifts(w http.ResponseWriter, r *http.Request) ([]domain.Shift, bool) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	if !site.IsActive {
		h.errorResponse(w, r, "Für ein deaktiviertes Objekt können keine Schichten generiert werden")
		return nil, false
	}

	var req generateShiftsRequest
	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}

	opts, endDate, err := h.buildPlannerOptions(site, &req)
	if err != nil {
		h.badRequest(w, r, err)
		return nil, false
	}

	var shifts []domain.Shift
	if endDate != nil {
		shifts, err = planner.GenerateForRange(opts, *endDate)
	} else {
		shifts, err = planner.Generate(opts)
	}
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrTemplateNotFound):
			h.badRequest(w, r, err)
		default:
			h.internalServerError(w, r, err)
		}
		return nil, false
	}

	return shifts, true
}

func (h *Handler) GenerateShifts(w http.ResponseWriter, r *http.Request) {
	shifts, ok := h.generateShifts(w, r)
	if !ok {
		return
	}

	inserted, err := h.repository.CreateShifts(shifts)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Schichten generiert", map[string]any{
		"generated": len(shifts),
		"inserted":  inserted,
		"skipped":   len(shifts) - inserted,
		"stats":     planner.Summarize(shifts),
	})
}

// PreviewGeneratedShifts runs the same generation without persisting anything.
func (h *Handler) PreviewGeneratedShifts(w http.ResponseWriter, r *http.Request) {
	shifts, ok := h.generateShifts(w, r)
	if !ok {
		return
	}

	h.successResponse(w, r, "Vorschau erstellt", map[string]any{
		"shifts": shifts,
		"stats":  planner.Summarize(shifts),
	})
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	h.successResponse(w, r, "Schichtdaten abgerufen", shift)
}

var allowedStatusTransitions = map[domain.ShiftStatus][]domain.ShiftStatus{
	domain.ShiftStatusPlanned:   {domain.ShiftStatusConfirmed, domain.ShiftStatusCancelled},
	domain.ShiftStatusConfirmed: {domain.ShiftStatusCompleted, domain.ShiftStatusCancelled},
}

func (h *Handler) UpdateShiftStatus(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Status string `json:"status" validate:"required,oneof=geplant bestätigt abgeschlossen storniert"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	newStatus := domain.ShiftStatus(req.Status)

	allowed := false
	for _, s := range allowedStatusTransitions[shift.Status] {
		if s == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		h.errorResponse(w, r, fmt.Sprintf("Statuswechsel von %q nach %q nicht zulässig", shift.Status, newStatus))
		return
	}

	shift.Status = newStatus
	if err := h.repository.UpdateShiftStatus(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Schichtstatus aktualisiert", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if shift.Status == domain.ShiftStatusCompleted {
		h.errorResponse(w, r, "Abgeschlossene Schichten können nicht gelöscht werden")
		return
	}

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Schicht gelöscht", nil)
}
