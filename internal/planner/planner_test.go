package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

func TestLookupTemplateByID(t *testing.T) {
	tmpl, ok := LookupTemplate("standard-3-schicht")
	if !ok {
		t.Fatal("expected template to resolve by id")
	}
	if tmpl.Name != "3-Schicht (24/7)" {
		t.Errorf("expected name '3-Schicht (24/7)', got %q", tmpl.Name)
	}
	if len(tmpl.Shifts) != 3 {
		t.Errorf("expected 3 shifts, got %d", len(tmpl.Shifts))
	}
}

func TestLookupTemplateByAlias(t *testing.T) {
	tmpl, ok := LookupTemplate("3-Schicht (24/7)")
	if !ok {
		t.Fatal("expected template to resolve by alias")
	}
	if tmpl.ID != "standard-3-schicht" {
		t.Errorf("expected id 'standard-3-schicht', got %q", tmpl.ID)
	}
}

func TestLookupTemplateNotFound(t *testing.T) {
	if _, ok := LookupTemplate("gibt-es-nicht"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestDistributeStaffSumAndBalance(t *testing.T) {
	tmpl, _ := LookupTemplate("standard-3-schicht")

	for n := 0; n <= 20; n++ {
		shifts := DistributeStaff(tmpl, n)

		sum := 0
		minStaff, maxStaff := shifts[0].RequiredStaff, shifts[0].RequiredStaff
		for _, s := range shifts {
			sum += s.RequiredStaff
			if s.RequiredStaff < minStaff {
				minStaff = s.RequiredStaff
			}
			if s.RequiredStaff > maxStaff {
				maxStaff = s.RequiredStaff
			}
		}

		if sum != n {
			t.Errorf("n=%d: staff sum %d does not match total", n, sum)
		}
		if maxStaff-minStaff > 1 {
			t.Errorf("n=%d: staff spread %d exceeds 1", n, maxStaff-minStaff)
		}
	}
}

func TestDistributeStaffRemainderOrder(t *testing.T) {
	tmpl, _ := LookupTemplate("standard-3-schicht")

	// 7 over 3 shifts: 3, 2, 2 in declaration order.
	shifts := DistributeStaff(tmpl, 7)
	want := []int{3, 2, 2}
	for i, s := range shifts {
		if s.RequiredStaff != want[i] {
			t.Errorf("shift %d: expected %d staff, got %d", i, want[i], s.RequiredStaff)
		}
	}
}

func TestDistributeStaffZeroTotal(t *testing.T) {
	tmpl, _ := LookupTemplate("standard-2-schicht")
	for _, s := range DistributeStaff(tmpl, 0) {
		if s.RequiredStaff != 0 {
			t.Errorf("expected zero staff, got %d", s.RequiredStaff)
		}
	}
}

func TestDistributeStaffDoesNotMutateCatalog(t *testing.T) {
	tmpl, _ := LookupTemplate("standard-3-schicht")
	DistributeStaff(tmpl, 9)
	if tmpl.Shifts[0].RequiredStaff != 1 {
		t.Error("catalog template was mutated")
	}
}

func TestGenerateSevenDaysCountsPerWeekday(t *testing.T) {
	// Tagdienst is active on exactly 5 of 7 weekdays, so a 7-day horizon
	// yields exactly 5 instances regardless of the start weekday.
	opts := Options{
		SiteID:    1,
		SiteName:  "Logistikzentrum Nord",
		Source:    TemplateRef{TemplateID: "tagdienst", RequiredStaff: 2},
		StartDate: time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
		DaysAhead: 7,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 5 {
		t.Errorf("expected 5 shifts over 7 days, got %d", len(shifts))
	}
}

func TestGenerateSingleDay(t *testing.T) {
	// 2025-05-27 is a Tuesday (weekday 2).
	tuesday := time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC)

	opts := Options{
		SiteName:  "Werk Süd",
		Source:    ExplicitShifts{Shifts: []ShiftDefinition{{Name: "Tagdienst", StartTime: "08:00", EndTime: "18:00", RequiredStaff: 1}}},
		StartDate: tuesday,
		DaysAhead: 1,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("expected exactly 1 shift, got %d", len(shifts))
	}

	// The same definition restricted to Mondays produces nothing on a Tuesday.
	opts.Source = ExplicitShifts{Shifts: []ShiftDefinition{{Name: "Tagdienst", StartTime: "08:00", EndTime: "18:00", RequiredStaff: 1, Days: []int{1}}}}
	shifts, err = Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("expected 0 shifts, got %d", len(shifts))
	}
}

func TestGenerateOvernightShift(t *testing.T) {
	opts := Options{
		SiteName:  "Industriepark Ost",
		Source:    ExplicitShifts{Shifts: []ShiftDefinition{{Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00", RequiredStaff: 1}}},
		StartDate: time.Date(2025, 5, 27, 0, 0, 0, 0, time.UTC),
		DaysAhead: 1,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts))
	}

	wantStart := time.Date(2025, 5, 27, 22, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 5, 28, 6, 0, 0, 0, time.UTC)
	if !shifts[0].StartTime.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, shifts[0].StartTime)
	}
	if !shifts[0].EndTime.Equal(wantEnd) {
		t.Errorf("expected end advanced by one day to %v, got %v", wantEnd, shifts[0].EndTime)
	}
}

func TestGenerateOrdering(t *testing.T) {
	opts := Options{
		SiteName:  "Hauptverwaltung",
		Source:    TemplateRef{TemplateID: "standard-3-schicht", RequiredStaff: 6},
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DaysAhead: 3,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 9 {
		t.Fatalf("expected 9 shifts, got %d", len(shifts))
	}

	// Date-ascending, declaration order within a day.
	for i := 1; i < len(shifts); i++ {
		if shifts[i].StartTime.Before(shifts[i-1].StartTime) {
			t.Fatalf("shift %d starts before shift %d", i, i-1)
		}
	}
	wantNames := []string{"Frühschicht", "Spätschicht", "Nachtschicht"}
	for i, shift := range shifts {
		want := "Hauptverwaltung - " + wantNames[i%3]
		if shift.Title != want {
			t.Errorf("shift %d: expected title %q, got %q", i, want, shift.Title)
		}
	}
}

func TestGenerateStampsMetadata(t *testing.T) {
	opts := Options{
		SiteID:                 42,
		SiteName:               "Messegelände",
		Source:                 TemplateRef{TemplateID: "nachtwache", RequiredStaff: 2},
		StartDate:              time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DaysAhead:              1,
		RequiredQualifications: []string{"Sachkundeprüfung §34a"},
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts))
	}

	shift := shifts[0]
	if shift.SiteID != 42 {
		t.Errorf("expected site id 42, got %d", shift.SiteID)
	}
	if shift.Status != domain.ShiftStatusPlanned {
		t.Errorf("expected status %q, got %q", domain.ShiftStatusPlanned, shift.Status)
	}
	if shift.RequiredEmployees != 2 {
		t.Errorf("expected 2 required employees, got %d", shift.RequiredEmployees)
	}
	if len(shift.RequiredQualifications) != 1 || shift.RequiredQualifications[0] != "Sachkundeprüfung §34a" {
		t.Errorf("qualifications not stamped: %v", shift.RequiredQualifications)
	}
}

func TestGenerateExplicitShiftsWinOverTemplate(t *testing.T) {
	opts := Options{
		SiteName:  "Klinikum West",
		Source:    ExplicitShifts{Shifts: []ShiftDefinition{{Name: "Sonderdienst", StartTime: "10:00", EndTime: "16:00", RequiredStaff: 3}}},
		StartDate: time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC),
		DaysAhead: 7,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Explicit definitions default to all weekdays.
	if len(shifts) != 7 {
		t.Fatalf("expected 7 shifts, got %d", len(shifts))
	}
	for _, shift := range shifts {
		if shift.Title != "Klinikum West - Sonderdienst" {
			t.Errorf("unexpected title %q", shift.Title)
		}
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	opts := Options{
		Source:    TemplateRef{TemplateID: "gibt-es-nicht", RequiredStaff: 3},
		StartDate: time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC),
	}

	if _, err := Generate(opts); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestGenerateForRangeMatchesDaysAhead(t *testing.T) {
	start := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	opts := Options{
		SiteName:  "Hafenterminal",
		Source:    TemplateRef{TemplateID: "standard-2-schicht", RequiredStaff: 4},
		StartDate: start,
	}

	byRange, err := GenerateForRange(opts, start.AddDate(0, 0, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.DaysAhead = 10
	byDays, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(byRange) != len(byDays) {
		t.Fatalf("range produced %d shifts, daysAhead produced %d", len(byRange), len(byDays))
	}
	for i := range byRange {
		if !byRange[i].StartTime.Equal(byDays[i].StartTime) || byRange[i].Title != byDays[i].Title {
			t.Errorf("shift %d differs between range and daysAhead generation", i)
		}
	}
}

func TestGenerateForRangeMinimumOneDay(t *testing.T) {
	start := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)
	opts := Options{
		SiteName:  "Hafenterminal",
		Source:    TemplateRef{TemplateID: "standard-2-schicht", RequiredStaff: 2},
		StartDate: start,
	}

	shifts, err := GenerateForRange(opts, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shifts) != 2 {
		t.Errorf("expected one day of shifts (2), got %d", len(shifts))
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	if stats.TotalShifts != 0 || stats.TotalRequiredEmployees != 0 {
		t.Errorf("expected zero totals, got %+v", stats)
	}
	if stats.AverageEmployeesPerShift != 0 {
		t.Errorf("expected zero average, got %f", stats.AverageEmployeesPerShift)
	}
	if len(stats.ShiftsByName) != 0 {
		t.Errorf("expected empty name map, got %v", stats.ShiftsByName)
	}
}

func TestSummarize(t *testing.T) {
	opts := Options{
		SiteName:  "Hauptverwaltung",
		Source:    TemplateRef{TemplateID: "standard-3-schicht", RequiredStaff: 6},
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DaysAhead: 7,
	}

	shifts, err := Generate(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := Summarize(shifts)
	if stats.TotalShifts != 21 {
		t.Errorf("expected 21 shifts, got %d", stats.TotalShifts)
	}
	if stats.TotalRequiredEmployees != 42 {
		t.Errorf("expected 42 required employees, got %d", stats.TotalRequiredEmployees)
	}
	if stats.ShiftsByName["Frühschicht"] != 7 {
		t.Errorf("expected 7 Frühschicht instances, got %d", stats.ShiftsByName["Frühschicht"])
	}
	if stats.AverageEmployeesPerShift != 2 {
		t.Errorf("expected average 2, got %f", stats.AverageEmployeesPerShift)
	}
}
