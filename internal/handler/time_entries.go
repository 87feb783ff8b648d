package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/wage"
)

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		SiteID       int64  `json:"siteID" validate:"required"`
		ShiftID      *int64 `json:"shiftID"`
		ActivityType string `json:"activityType" validate:"required"`
		Note         string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	activity := wage.ActivityType(req.ActivityType)
	if !slices.Contains(wage.Activities(), activity) {
		h.badRequest(w, r, errors.New("Unbekannte Tätigkeitsart"))
		return
	}

	// One running entry per employee at a time.
	open, err := h.repository.GetOpenTimeEntry(myInfo.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}
	if open != nil && err == nil {
		h.errorResponse(w, r, "Es läuft bereits ein Zeiteintrag, bitte zuerst ausstempeln")
		return
	}

	site, err := h.repository.GetSiteByID(req.SiteID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Objekt nicht gefunden")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !site.IsActive {
		h.errorResponse(w, r, "Für ein deaktiviertes Objekt kann nicht eingestempelt werden")
		return
	}

	if req.ShiftID != nil {
		shift, err := h.repository.GetShiftByID(*req.ShiftID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "Schicht nicht gefunden")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if shift.SiteID != site.ID {
			h.badRequest(w, r, errors.New("Die Schicht gehört nicht zum angegebenen Objekt"))
			return
		}
	}

	entry := &domain.TimeEntry{
		UserID:       myInfo.ID,
		SiteID:       site.ID,
		ShiftID:      req.ShiftID,
		ActivityType: activity,
		ClockIn:      time.Now(),
		Note:         req.Note,
	}

	if err := h.repository.CreateTimeEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Eingestempelt", entry)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Note string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entry, err := h.repository.GetOpenTimeEntry(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Kein laufender Zeiteintrag vorhanden")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	now := time.Now()
	entry.ClockOut = &now
	if req.Note != "" {
		entry.Note = req.Note
	}

	if err := h.repository.UpdateTimeEntry(entry); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Ausgestempelt", entry)
}

func (h *Handler) GetTimeEntry(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(TimeEntryCtx).(*domain.TimeEntry)
	h.successResponse(w, r, "Zeiteintrag abgerufen", entry)
}

// GetTimeEntryWage resolves the effective wage for a finished entry and prices
// the worked interval including time-based surcharges.
func (h *Handler) GetTimeEntryWage(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(TimeEntryCtx).(*domain.TimeEntry)

	if entry.ClockOut == nil {
		h.errorResponse(w, r, "Der Zeiteintrag ist noch nicht abgeschlossen")
		return
	}

	user, err := h.repository.GetUserByID(entry.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	site, err := h.repository.GetSiteByID(entry.SiteID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	activityWage, err := h.repository.GetUserActivityWage(user.ID, entry.ActivityType)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	breakdown, err := wage.ComputeBreakdown(user.WageGroup, entry.ActivityType, &wage.Overrides{
		EmployeeBaseWage:     user.BaseWageOverride,
		EmployeeActivityWage: activityWage,
		SiteWage:             site.HourlyWageOverride,
	})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result := wage.CalculateFlexibleWage(wage.FlexibleWageInput{
		Start:      entry.ClockIn,
		End:        *entry.ClockOut,
		HourlyWage: breakdown.EffectiveWage,
	})

	h.successResponse(w, r, "Lohnberechnung erstellt", map[string]any{
		"breakdown": breakdown,
		"wage":      result,
	})
}
