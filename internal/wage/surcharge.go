package wage

import "time"

type SurchargeType string

const (
	SurchargeNight   SurchargeType = "night"
	SurchargeWeekend SurchargeType = "weekend"
	SurchargeHoliday SurchargeType = "holiday"
)

// Night window per BSDW: 22:00 to 06:00 of the following day.
const (
	nightWindowStartHour = 22
	nightWindowEndHour   = 6
)

var surchargeLabels = map[SurchargeType]string{
	SurchargeNight:   "Nachtzuschlag (22:00–06:00)",
	SurchargeWeekend: "Wochenendzuschlag (Sa/So)",
	SurchargeHoliday: "Feiertagszuschlag",
}

// SurchargeLabel returns the display name of a surcharge type. Used for
// reporting only; unknown types fall through to their raw value.
func SurchargeLabel(t SurchargeType) string {
	if label, ok := surchargeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Surcharge is a percentage add-on applied to the portion of a worked
// interval that overlaps the surcharge's trigger window.
type Surcharge struct {
	Type    SurchargeType `json:"type"`
	Percent float64       `json:"percent"` // fraction of the effective wage, e.g. 0.15
}

// DefaultSurcharges mirrors the usual BSDW time-based additions.
var DefaultSurcharges = []Surcharge{
	{Type: SurchargeNight, Percent: 0.15},
	{Type: SurchargeWeekend, Percent: 0.10},
	{Type: SurchargeHoliday, Percent: 1.00},
}

type FlexibleWageInput struct {
	Start      time.Time   `json:"start"`
	End        time.Time   `json:"end"`
	HourlyWage float64     `json:"hourlyWage"`
	Surcharges []Surcharge `json:"surcharges"` // nil means DefaultSurcharges
	Holidays   []time.Time `json:"holidays"`   // dates flagged as public holidays
}

type SurchargeItem struct {
	Type    SurchargeType `json:"type"`
	Label   string        `json:"label"`
	Hours   float64       `json:"hours"`
	Percent float64       `json:"percent"`
	Amount  float64       `json:"amount"`
}

type FlexibleWageResult struct {
	Hours           float64         `json:"hours"`
	BaseWage        float64         `json:"baseWage"`
	Surcharges      []SurchargeItem `json:"surcharges"`
	GrossWage       float64         `json:"grossWage"`
	NetWageEstimate float64         `json:"netWageEstimate"`
	IsEstimate      bool            `json:"isEstimate"`
	Disclaimer      string          `json:"disclaimer"`
}

// netEstimateFactor is a flat approximation of the net share of the gross
// wage. It is not a tax computation and must never be presented as one.
const netEstimateFactor = 0.78

// NetWageDisclaimer accompanies every net estimate so callers cannot mistake
// it for authoritative payroll output.
const NetWageDisclaimer = "Geschätzter Nettolohn – pauschale Annäherung, keine steuerliche Berechnung."

// CalculateFlexibleWage computes the gross pay for a worked interval: base
// hours times the effective wage, plus each surcharge applied to the hours
// overlapping its trigger window. A zero or negative interval yields a zero
// result instead of an error; rejecting invalid intervals is the job of the
// time-entry validation upstream.
func CalculateFlexibleWage(in FlexibleWageInput) FlexibleWageResult {
	result := FlexibleWageResult{
		Surcharges: []SurchargeItem{},
		IsEstimate: true,
		Disclaimer: NetWageDisclaimer,
	}

	if !in.End.After(in.Start) {
		return result
	}

	hours := in.End.Sub(in.Start).Hours()
	result.Hours = round2(hours)
	result.BaseWage = round2(hours * in.HourlyWage)

	surcharges := in.Surcharges
	if surcharges == nil {
		surcharges = DefaultSurcharges
	}

	gross := result.BaseWage
	for _, s := range surcharges {
		var affected float64
		switch s.Type {
		case SurchargeNight:
			affected = nightHours(in.Start, in.End)
		case SurchargeWeekend:
			affected = weekendHours(in.Start, in.End)
		case SurchargeHoliday:
			affected = holidayHours(in.Start, in.End, in.Holidays)
		default:
			continue
		}
		if affected <= 0 {
			continue
		}

		amount := round2(affected * in.HourlyWage * s.Percent)
		result.Surcharges = append(result.Surcharges, SurchargeItem{
			Type:    s.Type,
			Label:   SurchargeLabel(s.Type),
			Hours:   round2(affected),
			Percent: s.Percent,
			Amount:  amount,
		})
		gross += amount
	}

	result.GrossWage = round2(gross)
	result.NetWageEstimate = round2(result.GrossWage * netEstimateFactor)

	return result
}

// nightHours sums the overlap of [start, end) with the nightly 22:00–06:00
// windows. The loop walks calendar days, so a multi-day interval stays linear
// in its length.
func nightHours(start, end time.Time) float64 {
	total := 0.0
	for day := startOfDay(start); day.Before(end); day = day.AddDate(0, 0, 1) {
		morningEnd := day.Add(time.Duration(nightWindowEndHour) * time.Hour)
		total += overlapHours(start, end, day, morningEnd)

		eveningStart := day.Add(time.Duration(nightWindowStartHour) * time.Hour)
		total += overlapHours(start, end, eveningStart, day.AddDate(0, 0, 1))
	}
	return total
}

// weekendHours sums the portions of the interval falling on a Saturday or
// Sunday.
func weekendHours(start, end time.Time) float64 {
	total := 0.0
	for day := startOfDay(start); day.Before(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			continue
		}
		total += overlapHours(start, end, day, day.AddDate(0, 0, 1))
	}
	return total
}

// holidayHours sums the portions of the interval falling on a flagged holiday
// date. Holiday dates are compared by calendar day in the interval's location.
func holidayHours(start, end time.Time, holidays []time.Time) float64 {
	total := 0.0
	for day := startOfDay(start); day.Before(end); day = day.AddDate(0, 0, 1) {
		if !isHoliday(day, holidays) {
			continue
		}
		total += overlapHours(start, end, day, day.AddDate(0, 0, 1))
	}
	return total
}

func isHoliday(day time.Time, holidays []time.Time) bool {
	for _, h := range holidays {
		if h.In(day.Location()).Format(time.DateOnly) == day.Format(time.DateOnly) {
			return true
		}
	}
	return false
}

func overlapHours(aStart, aEnd, bStart, bEnd time.Time) float64 {
	from := aStart
	if bStart.After(from) {
		from = bStart
	}
	to := aEnd
	if bEnd.Before(to) {
		to = bEnd
	}
	if !to.After(from) {
		return 0
	}
	return to.Sub(from).Hours()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
