package domain

import (
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/wage"
)

type Role string

const (
	RoleAdmin      Role = "Administrator"
	RoleDispatcher Role = "Einsatzleiter"
	RoleGuard      Role = "Sicherheitsmitarbeiter"
)

type User struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	PasswordHash     string     `json:"-"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	Role             Role       `json:"role"`
	WageGroup        wage.Group `json:"wageGroup"`
	BaseWageOverride *float64   `json:"baseWageOverride"` // individual hourly wage, overrides the tariff base
	Qualifications   []string   `json:"qualifications"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	Version          int32      `json:"-"`
}

// UserActivityWage is an employee-specific hourly wage for a single activity
// type. It takes precedence over the employee's base wage override.
type UserActivityWage struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"userID"`
	ActivityType wage.ActivityType `json:"activityType"`
	HourlyWage   float64           `json:"hourlyWage"`
	CreatedAt    time.Time         `json:"createdAt"`
	Version      int32             `json:"-"`
}
