package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (h *Handler) GetAllSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.repository.GetAllSites()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Objektliste abgerufen", sites)
}

func (h *Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                   string   `json:"name" validate:"required"`
		Address                string   `json:"address" validate:"required"`
		Description            string   `json:"description"`
		RequiredQualifications []string `json:"requiredQualifications"`
		HourlyWageOverride     *float64 `json:"hourlyWageOverride" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	site := &domain.Site{
		Name:                   req.Name,
		Address:                req.Address,
		Description:            req.Description,
		RequiredQualifications: req.RequiredQualifications,
		HourlyWageOverride:     req.HourlyWageOverride,
	}

	if err := h.repository.CreateSite(site); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "sites_name_key":
			h.badRequest(w, r, errors.New("Objektname bereits vergeben"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Objekt angelegt", site)
}

func (h *Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)
	h.successResponse(w, r, "Objektdaten abgerufen", site)
}

func (h *Handler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name                   *string  `json:"name"`
		Address                *string  `json:"address"`
		Description            *string  `json:"description"`
		RequiredQualifications []string `json:"requiredQualifications"`
		HourlyWageOverride     *float64 `json:"hourlyWageOverride" validate:"omitempty,gt=0"`
		IsActive               *bool    `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	site := r.Context().Value(SiteCtx).(*domain.Site)

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.Address != nil {
		site.Address = *req.Address
	}
	if req.Description != nil {
		site.Description = *req.Description
	}
	if req.RequiredQualifications != nil {
		site.RequiredQualifications = req.RequiredQualifications
	}
	if req.HourlyWageOverride != nil {
		site.HourlyWageOverride = req.HourlyWageOverride
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateSite(site); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "sites_name_key":
			h.badRequest(w, r, errors.New("Objektname bereits vergeben"))
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Objektdaten aktualisiert", site)
}

func (h *Handler) DeleteSite(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	if err := h.repository.DeleteSite(site.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Objekt gelöscht", nil)
}
