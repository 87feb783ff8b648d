package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func (h *Handler) GetSiteIncidents(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)

	incidents, err := h.repository.GetIncidentsBySite(site.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Ereignismeldungen abgerufen", incidents)
}

func (h *Handler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	site := r.Context().Value(SiteCtx).(*domain.Site)
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Title       string     `json:"title" validate:"required"`
		Description string     `json:"description" validate:"required"`
		Severity    string     `json:"severity" validate:"required,oneof=gering mittel hoch kritisch"`
		OccurredAt  *time.Time `json:"occurredAt"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		if req.OccurredAt.After(time.Now()) {
			h.badRequest(w, r, errors.New("Der Ereigniszeitpunkt darf nicht in der Zukunft liegen"))
			return
		}
		occurredAt = *req.OccurredAt
	}

	incident := &domain.Incident{
		SiteID:      site.ID,
		ReporterID:  myInfo.ID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    domain.IncidentSeverity(req.Severity),
		Status:      domain.IncidentStatusOpen,
		OccurredAt:  occurredAt,
	}

	if err := h.repository.CreateIncident(incident); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Ereignismeldung erfasst", incident)
}

func (h *Handler) GetIncident(w http.ResponseWriter, r *http.Request) {
	incident := r.Context().Value(IncidentCtx).(*domain.Incident)
	h.successResponse(w, r, "Ereignismeldung abgerufen", incident)
}

func (h *Handler) UpdateIncident(w http.ResponseWriter, r *http.Request) {
	incident := r.Context().Value(IncidentCtx).(*domain.Incident)

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Severity    *string `json:"severity" validate:"omitempty,oneof=gering mittel hoch kritisch"`
		Status      *string `json:"status" validate:"omitempty,oneof=offen erledigt"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Title != nil {
		incident.Title = *req.Title
	}
	if req.Description != nil {
		incident.Description = *req.Description
	}
	if req.Severity != nil {
		incident.Severity = domain.IncidentSeverity(*req.Severity)
	}
	if req.Status != nil {
		incident.Status = domain.IncidentStatus(*req.Status)
	}

	if err := h.repository.UpdateIncident(incident); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Ereignismeldung aktualisiert", incident)
}

func (h *Handler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	incident := r.Context().Value(IncidentCtx).(*domain.Incident)

	if err := h.repository.DeleteIncident(incident.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Ereignismeldung gelöscht", nil)
}
