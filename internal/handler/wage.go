package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/wage"
)

// GetWageCatalog lists the tariff groups, activity types and default
// surcharges so clients never hard-code the tables.
func (h *Handler) GetWageCatalog(w http.ResponseWriter, r *http.Request) {
	groups := make([]map[string]any, 0, len(wage.Groups()))
	for _, g := range wage.Groups() {
		rate, err := wage.BaseHourlyWage(g)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		groups = append(groups, map[string]any{
			"group":          g,
			"baseHourlyWage": rate,
		})
	}

	activities := make([]map[string]any, 0, len(wage.Activities()))
	for _, a := range wage.Activities() {
		activities = append(activities, map[string]any{
			"activity":   a,
			"adjustment": wage.ActivityAdjustment(a),
		})
	}

	h.successResponse(w, r, "Lohnkatalog abgerufen", map[string]any{
		"groups":     groups,
		"activities": activities,
		"surcharges": wage.DefaultSurcharges,
	})
}

// GetWageBreakdown resolves the effective hourly wage for an employee, an
// activity type and optionally a site, without pricing an interval.
func (h *Handler) GetWageBreakdown(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       int64  `json:"userID" validate:"required"`
		SiteID       *int64 `json:"siteID"`
		ActivityType string `json:"activityType" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, err := h.repository.GetUserByID(req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Benutzer nicht gefunden")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	activity := wage.ActivityType(req.ActivityType)

	overrides := &wage.Overrides{
		EmployeeBaseWage: user.BaseWageOverride,
	}

	activityWage, err := h.repository.GetUserActivityWage(user.ID, activity)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	overrides.EmployeeActivityWage = activityWage

	if req.SiteID != nil {
		site, err := h.repository.GetSiteByID(*req.SiteID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "Objekt nicht gefunden")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		overrides.SiteWage = site.HourlyWageOverride
	}

	breakdown, err := wage.ComputeBreakdown(user.WageGroup, activity, overrides)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "Lohnaufschlüsselung erstellt", breakdown)
}

// CalculateWage prices an arbitrary interval with an explicit hourly wage,
// for quotations and what-if planning.
func (h *Handler) CalculateWage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Start      time.Time        `json:"start" validate:"required"`
		End        time.Time        `json:"end" validate:"required"`
		HourlyWage float64          `json:"hourlyWage" validate:"required,gt=0"`
		Surcharges []wage.Surcharge `json:"surcharges"`
		Holidays   []string         `json:"holidays" validate:"omitempty,dive,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.End.After(req.Start) {
		h.badRequest(w, r, errors.New("Das Ende muss nach dem Anfang liegen"))
		return
	}

	holidays := make([]time.Time, 0, len(req.Holidays))
	for _, raw := range req.Holidays {
		day, err := time.ParseInLocation(dateLayout, raw, req.Start.Location())
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		holidays = append(holidays, day)
	}

	result := wage.CalculateFlexibleWage(wage.FlexibleWageInput{
		Start:      req.Start,
		End:        req.End,
		HourlyWage: req.HourlyWage,
		Surcharges: req.Surcharges,
		Holidays:   holidays,
	})

	h.successResponse(w, r, "Lohnberechnung erstellt", result)
}
