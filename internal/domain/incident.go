package domain

import "time"

type IncidentSeverity string

const (
	IncidentSeverityLow      IncidentSeverity = "gering"
	IncidentSeverityMedium   IncidentSeverity = "mittel"
	IncidentSeverityHigh     IncidentSeverity = "hoch"
	IncidentSeverityCritical IncidentSeverity = "kritisch"
)

type IncidentStatus string

const (
	IncidentStatusOpen     IncidentStatus = "offen"
	IncidentStatusResolved IncidentStatus = "erledigt"
)

// Incident is an occurrence report (Ereignismeldung) filed by a guard at a site.
type Incident struct {
	ID          int64            `json:"id"`
	SiteID      int64            `json:"siteID"`
	ReporterID  int64            `json:"reporterID"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Severity    IncidentSeverity `json:"severity"`
	Status      IncidentStatus   `json:"status"`
	OccurredAt  time.Time        `json:"occurredAt"`
	CreatedAt   time.Time        `json:"createdAt"`
	Version     int32            `json:"-"`
}
