package planner

import (
	"math"
	"strings"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

type Stats struct {
	TotalShifts              int            `json:"totalShifts"`
	TotalRequiredEmployees   int            `json:"totalRequiredEmployees"`
	ShiftsByName             map[string]int `json:"shiftsByName"`
	AverageEmployeesPerShift float64        `json:"averageEmployeesPerShift"`
}

// Summarize aggregates a generated shift batch for preview responses. The
// display name of a shift is the part of the title after the last " - "
// separator, which is how Generate composes titles.
func Summarize(shifts []domain.Shift) Stats {
	stats := Stats{
		ShiftsByName: map[string]int{},
	}

	for _, shift := range shifts {
		stats.TotalShifts++
		stats.TotalRequiredEmployees += int(shift.RequiredEmployees)
		stats.ShiftsByName[displayName(shift.Title)]++
	}

	if stats.TotalShifts > 0 {
		avg := float64(stats.TotalRequiredEmployees) / float64(stats.TotalShifts)
		stats.AverageEmployeesPerShift = math.Round(avg*100) / 100
	}

	return stats
}

func displayName(title string) string {
	if idx := strings.LastIndex(title, " - "); idx >= 0 {
		return title[idx+len(" - "):]
	}
	return title
}
