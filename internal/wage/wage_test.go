package wage

import (
	"testing"
	"time"
)

func f(v float64) *float64 { return &v }

func TestBaseHourlyWage(t *testing.T) {
	rate, err := BaseHourlyWage(GroupLohngruppe3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 15.00 {
		t.Errorf("expected 15.00, got %.2f", rate)
	}
}

func TestBaseHourlyWageUnknownGroup(t *testing.T) {
	if _, err := BaseHourlyWage(Group("Lohngruppe 99")); err == nil {
		t.Error("expected error for unknown wage group")
	}
}

func TestActivityAdjustment(t *testing.T) {
	if adj := ActivityAdjustment(ActivityWerttransport); adj != 2.00 {
		t.Errorf("expected 2.00, got %.2f", adj)
	}
	// Missing adjustments are a soft zero, not an error.
	if adj := ActivityAdjustment(ActivityType("Hundestaffel")); adj != 0 {
		t.Errorf("expected 0 for unknown activity, got %.2f", adj)
	}
}

func TestComputeBreakdownPrecedence(t *testing.T) {
	// Base 15.00 (Lohngruppe 3), activity +2.00 (Werttransport), employee
	// base 16.50, employee activity wage 19.00, site override 22.00. Each
	// removal steps down exactly one precedence level.
	ov := &Overrides{
		EmployeeBaseWage:     f(16.50),
		EmployeeActivityWage: f(19.00),
		SiteWage:             f(22.00),
	}

	b, err := ComputeBreakdown(GroupLohngruppe3, ActivityWerttransport, ov)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.EffectiveWage != 22.00 || b.Source != SourceSite {
		t.Errorf("expected 22.00/%s, got %.2f/%s", SourceSite, b.EffectiveWage, b.Source)
	}

	ov.SiteWage = nil
	b, _ = ComputeBreakdown(GroupLohngruppe3, ActivityWerttransport, ov)
	if b.EffectiveWage != 19.00 || b.Source != SourceEmployeeActivity {
		t.Errorf("expected 19.00/%s, got %.2f/%s", SourceEmployeeActivity, b.EffectiveWage, b.Source)
	}

	ov.EmployeeActivityWage = nil
	b, _ = ComputeBreakdown(GroupLohngruppe3, ActivityWerttransport, ov)
	if b.EffectiveWage != 18.50 || b.Source != SourceEmployeeBase {
		t.Errorf("expected 18.50/%s, got %.2f/%s", SourceEmployeeBase, b.EffectiveWage, b.Source)
	}

	ov.EmployeeBaseWage = nil
	b, _ = ComputeBreakdown(GroupLohngruppe3, ActivityWerttransport, ov)
	if b.EffectiveWage != 17.00 || b.Source != SourceTariff {
		t.Errorf("expected 17.00/%s, got %.2f/%s", SourceTariff, b.EffectiveWage, b.Source)
	}
}

func TestComputeBreakdownNilOverrides(t *testing.T) {
	b, err := ComputeBreakdown(GroupLohngruppe1, ActivityObjektschutz, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.EffectiveWage != 13.50 || b.Source != SourceTariff {
		t.Errorf("expected tariff fallback 13.50, got %.2f/%s", b.EffectiveWage, b.Source)
	}
	if b.ActivityAdjustment != 0 {
		t.Errorf("expected no adjustment for Objektschutz, got %.2f", b.ActivityAdjustment)
	}
}

func TestComputeBreakdownUnknownGroup(t *testing.T) {
	if _, err := ComputeBreakdown(Group("Sondertarif"), ActivityObjektschutz, nil); err == nil {
		t.Error("expected error for unknown wage group")
	}
}

func TestCalculateFlexibleWagePlainDay(t *testing.T) {
	// Tuesday 08:00-16:00: no night, weekend or holiday hours.
	in := FlexibleWageInput{
		Start:      time.Date(2025, 5, 27, 8, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 5, 27, 16, 0, 0, 0, time.UTC),
		HourlyWage: 15.00,
	}

	result := CalculateFlexibleWage(in)
	if result.Hours != 8 {
		t.Errorf("expected 8 hours, got %.2f", result.Hours)
	}
	if result.GrossWage != 120.00 {
		t.Errorf("expected gross 120.00, got %.2f", result.GrossWage)
	}
	if len(result.Surcharges) != 0 {
		t.Errorf("expected no surcharges, got %v", result.Surcharges)
	}
	if !result.IsEstimate || result.Disclaimer == "" {
		t.Error("net estimate must be flagged with a disclaimer")
	}
	if result.NetWageEstimate != 93.60 {
		t.Errorf("expected net estimate 93.60, got %.2f", result.NetWageEstimate)
	}
}

func TestCalculateFlexibleWageNightShift(t *testing.T) {
	// Tuesday 22:00 to Wednesday 06:00: all 8 hours inside the night window.
	in := FlexibleWageInput{
		Start:      time.Date(2025, 5, 27, 22, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 5, 28, 6, 0, 0, 0, time.UTC),
		HourlyWage: 10.00,
		Surcharges: []Surcharge{{Type: SurchargeNight, Percent: 0.15}},
	}

	result := CalculateFlexibleWage(in)
	if result.BaseWage != 80.00 {
		t.Errorf("expected base 80.00, got %.2f", result.BaseWage)
	}
	if len(result.Surcharges) != 1 {
		t.Fatalf("expected 1 surcharge, got %d", len(result.Surcharges))
	}
	if result.Surcharges[0].Hours != 8 {
		t.Errorf("expected 8 night hours, got %.2f", result.Surcharges[0].Hours)
	}
	if result.Surcharges[0].Amount != 12.00 {
		t.Errorf("expected surcharge 12.00, got %.2f", result.Surcharges[0].Amount)
	}
	if result.GrossWage != 92.00 {
		t.Errorf("expected gross 92.00, got %.2f", result.GrossWage)
	}
}

func TestCalculateFlexibleWagePartialNightOverlap(t *testing.T) {
	// 20:00 to midnight: only the 22:00-24:00 portion is night work.
	in := FlexibleWageInput{
		Start:      time.Date(2025, 5, 27, 20, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC),
		HourlyWage: 10.00,
		Surcharges: []Surcharge{{Type: SurchargeNight, Percent: 0.15}},
	}

	result := CalculateFlexibleWage(in)
	if len(result.Surcharges) != 1 {
		t.Fatalf("expected 1 surcharge, got %d", len(result.Surcharges))
	}
	if result.Surcharges[0].Hours != 2 {
		t.Errorf("expected 2 night hours, got %.2f", result.Surcharges[0].Hours)
	}
}

func TestCalculateFlexibleWageWeekend(t *testing.T) {
	// Friday 20:00 to Saturday 04:00: 4 of 8 hours fall on the Saturday.
	in := FlexibleWageInput{
		Start:      time.Date(2025, 5, 30, 20, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 5, 31, 4, 0, 0, 0, time.UTC),
		HourlyWage: 10.00,
		Surcharges: []Surcharge{{Type: SurchargeWeekend, Percent: 0.10}},
	}

	result := CalculateFlexibleWage(in)
	if len(result.Surcharges) != 1 {
		t.Fatalf("expected 1 surcharge, got %d", len(result.Surcharges))
	}
	if result.Surcharges[0].Hours != 4 {
		t.Errorf("expected 4 weekend hours, got %.2f", result.Surcharges[0].Hours)
	}
	if result.Surcharges[0].Amount != 4.00 {
		t.Errorf("expected surcharge 4.00, got %.2f", result.Surcharges[0].Amount)
	}
}

func TestCalculateFlexibleWageHoliday(t *testing.T) {
	// Whole shift on a flagged holiday.
	holiday := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC) // Tag der Deutschen Einheit
	in := FlexibleWageInput{
		Start:      time.Date(2025, 10, 3, 8, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 10, 3, 16, 0, 0, 0, time.UTC),
		HourlyWage: 15.00,
		Surcharges: []Surcharge{{Type: SurchargeHoliday, Percent: 1.00}},
		Holidays:   []time.Time{holiday},
	}

	result := CalculateFlexibleWage(in)
	if len(result.Surcharges) != 1 {
		t.Fatalf("expected 1 surcharge, got %d", len(result.Surcharges))
	}
	if result.Surcharges[0].Hours != 8 {
		t.Errorf("expected 8 holiday hours, got %.2f", result.Surcharges[0].Hours)
	}
	// 100% on top of the base doubles the pay.
	if result.GrossWage != 240.00 {
		t.Errorf("expected gross 240.00, got %.2f", result.GrossWage)
	}
}

func TestCalculateFlexibleWageZeroDuration(t *testing.T) {
	at := time.Date(2025, 5, 27, 8, 0, 0, 0, time.UTC)

	result := CalculateFlexibleWage(FlexibleWageInput{Start: at, End: at, HourlyWage: 15.00})
	if result.GrossWage != 0 || result.Hours != 0 {
		t.Errorf("expected zero result for zero duration, got %+v", result)
	}

	result = CalculateFlexibleWage(FlexibleWageInput{Start: at, End: at.Add(-time.Hour), HourlyWage: 15.00})
	if result.GrossWage != 0 {
		t.Errorf("expected zero result for negative duration, got %+v", result)
	}
}

func TestSurchargeLabel(t *testing.T) {
	if label := SurchargeLabel(SurchargeNight); label != "Nachtzuschlag (22:00–06:00)" {
		t.Errorf("unexpected label %q", label)
	}
	if label := SurchargeLabel(SurchargeType("sonder")); label != "sonder" {
		t.Errorf("expected raw fallback, got %q", label)
	}
}
