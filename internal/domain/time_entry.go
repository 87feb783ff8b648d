package domain

import (
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/wage"
)

// TimeEntry is a worked interval of one employee, optionally tied to a shift.
// ClockOut is nil while the employee is still on duty.
type TimeEntry struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"userID"`
	SiteID       int64             `json:"siteID"`
	ShiftID      *int64            `json:"shiftID"`
	ActivityType wage.ActivityType `json:"activityType"`
	ClockIn      time.Time         `json:"clockIn"`
	ClockOut     *time.Time        `json:"clockOut"`
	Note         string            `json:"note"`
	CreatedAt    time.Time         `json:"createdAt"`
	Version      int32             `json:"-"`
}
