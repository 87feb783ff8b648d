package domain

import "time"

type ShiftStatus string

const (
	ShiftStatusPlanned   ShiftStatus = "geplant"
	ShiftStatusConfirmed ShiftStatus = "bestätigt"
	ShiftStatusCompleted ShiftStatus = "abgeschlossen"
	ShiftStatusCancelled ShiftStatus = "storniert"
)

// Shift is a concrete, dated shift instance at a site. Instances are created
// in bulk by the planner and persisted by the scheduling layer.
type Shift struct {
	ID                     int64       `json:"id"`
	SiteID                 int64       `json:"siteID"`
	Title                  string      `json:"title"`
	Description            string      `json:"description"`
	Location               string      `json:"location"`
	StartTime              time.Time   `json:"startTime"`
	EndTime                time.Time   `json:"endTime"`
	RequiredEmployees      int32       `json:"requiredEmployees"`
	RequiredQualifications []string    `json:"requiredQualifications"`
	Status                 ShiftStatus `json:"status"`
	CreatedAt              time.Time   `json:"createdAt"`
	Version                int32       `json:"-"`
}
