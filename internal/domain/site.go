package domain

import "time"

// Site is a guarded object (Bewachungsobjekt).
type Site struct {
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	Address                string    `json:"address"`
	Description            string    `json:"description"`
	RequiredQualifications []string  `json:"requiredQualifications"`
	HourlyWageOverride     *float64  `json:"hourlyWageOverride"` // site-specific wage, beats every other wage source
	IsActive               bool      `json:"isActive"`
	CreatedAt              time.Time `json:"createdAt"`
	Version                int32     `json:"-"`
}
