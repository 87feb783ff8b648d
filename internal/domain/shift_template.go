package domain

import "time"

// ShiftTemplateShift uses weekday indices 0-6 with Sunday = 0. Start and end
// times are "HH:mm"; an end time at or before the start time means the shift
// crosses midnight.
type ShiftTemplateShift struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	RequiredStaff  int32   `json:"requiredStaff"`
	ApplicableDays []int32 `json:"applicableDays"`
}

type ShiftTemplate struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Shifts      []ShiftTemplateShift `json:"shifts"`
	CreatedAt   time.Time            `json:"createdAt"`
	Version     int32                `json:"-"`
}
