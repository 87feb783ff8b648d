package utils

import (
	"testing"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func TestValidateShiftTemplateTimesAcceptsOvernightShift(t *testing.T) {
	st := &domain.ShiftTemplate{
		Name: "Nachtwache",
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Nachtwache", StartTime: "22:00", EndTime: "06:00", RequiredStaff: 1, ApplicableDays: []int32{0, 1, 2, 3, 4, 5, 6}},
		},
	}

	if err := ValidateShiftTemplateTimes(st); err != nil {
		t.Fatalf("overnight shift should be valid, got error: %v", err)
	}
}

func TestValidateShiftTemplateTimesRejectsBadTimeFormat(t *testing.T) {
	st := &domain.ShiftTemplate{
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Frühschicht", StartTime: "6:00:00", EndTime: "14:00", RequiredStaff: 1, ApplicableDays: []int32{1}},
		},
	}

	if err := ValidateShiftTemplateTimes(st); err == nil {
		t.Fatal("expected an error for a malformed start time")
	}
}

func TestValidateShiftTemplateTimesRejectsInvalidWeekday(t *testing.T) {
	st := &domain.ShiftTemplate{
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Tagdienst", StartTime: "08:00", EndTime: "18:00", RequiredStaff: 1, ApplicableDays: []int32{7}},
		},
	}

	if err := ValidateShiftTemplateTimes(st); err == nil {
		t.Fatal("expected an error for weekday index 7")
	}
}

func TestValidateShiftTemplateTimesRejectsDuplicateWeekday(t *testing.T) {
	st := &domain.ShiftTemplate{
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Tagdienst", StartTime: "08:00", EndTime: "18:00", RequiredStaff: 1, ApplicableDays: []int32{1, 1}},
		},
	}

	if err := ValidateShiftTemplateTimes(st); err == nil {
		t.Fatal("expected an error for a duplicated weekday")
	}
}

func TestGenerateUsernameFromFullNameTransliteratesUmlauts(t *testing.T) {
	username := GenerateUsernameFromFullName("Jörg Müßig")

	for _, r := range username {
		if r > 127 {
			t.Fatalf("username %q contains a non-ASCII character", username)
		}
	}
}
