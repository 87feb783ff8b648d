package utils

import (
	"fmt"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

// ValidateShiftTemplateTimes checks the time fields of every shift in a
// template. An end time at or before the start time is legal and marks an
// overnight shift, so only the format and the weekday set are validated here.
func ValidateShiftTemplateTimes(st *domain.ShiftTemplate) error {
	for i, shift := range st.Shifts {
		if _, err := time.Parse("15:04", shift.StartTime); err != nil {
			return fmt.Errorf("Schicht %d: ungültige Anfangszeit %q", i+1, shift.StartTime)
		}
		if _, err := time.Parse("15:04", shift.EndTime); err != nil {
			return fmt.Errorf("Schicht %d: ungültige Endzeit %q", i+1, shift.EndTime)
		}

		seen := make(map[int32]bool)
		for _, day := range shift.ApplicableDays {
			if day < 0 || day > 6 {
				return fmt.Errorf("Schicht %d: ungültiger Wochentag %d", i+1, day)
			}
			if seen[day] {
				return fmt.Errorf("Schicht %d: Wochentag %d mehrfach angegeben", i+1, day)
			}
			seen[day] = true
		}
	}

	return nil
}
