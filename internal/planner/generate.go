package planner

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
)

var ErrTemplateNotFound = errors.New("Schichtmodell nicht gefunden")

const defaultDaysAhead = 30

// Source selects where the shift definitions for a generation run come from.
// An explicit shift list always wins over a template reference.
type Source interface {
	isSource()
}

// ExplicitShifts carries a caller-supplied shift list, typically from a
// security concept document. Definitions without a weekday set are active
// every day of the week.
type ExplicitShifts struct {
	Shifts []ShiftDefinition
}

// TemplateRef resolves a catalog template and spreads RequiredStaff over its
// shifts.
type TemplateRef struct {
	TemplateID    string
	RequiredStaff int
}

func (ExplicitShifts) isSource() {}
func (TemplateRef) isSource()    {}

type Options struct {
	SiteID                 int64
	SiteName               string
	Source                 Source
	StartDate              time.Time
	DaysAhead              int // 0 means defaultDaysAhead
	RequiredQualifications []string
}

// Generate expands a weekly shift pattern into dated shift instances. Shifts
// are emitted date-ascending, then in declaration order within a day; callers
// rely on that ordering being stable. The persistence layer owns deduplication
// against already stored shifts.
func Generate(opts Options) ([]domain.Shift, error) {
	definitions, err := resolveDefinitions(opts.Source)
	if err != nil {
		return nil, err
	}

	daysAhead := opts.DaysAhead
	if daysAhead <= 0 {
		daysAhead = defaultDaysAhead
	}

	shifts := make([]domain.Shift, 0, daysAhead*len(definitions))

	for offset := 0; offset < daysAhead; offset++ {
		day := opts.StartDate.AddDate(0, 0, offset)
		weekday := int(day.Weekday())

		for _, def := range definitions {
			if !slices.Contains(def.Days, weekday) {
				continue
			}

			start, err := combine(day, def.StartTime)
			if err != nil {
				return nil, fmt.Errorf("Schicht %q: %w", def.Name, err)
			}
			end, err := combine(day, def.EndTime)
			if err != nil {
				return nil, fmt.Errorf("Schicht %q: %w", def.Name, err)
			}

			// Overnight rule: an end at or before the start belongs to the
			// next calendar day. Deliberately date arithmetic, not elapsed
			// time; a definition spanning more than 24h net would still end
			// on the following day.
			if !end.After(start) {
				end = end.AddDate(0, 0, 1)
			}

			shifts = append(shifts, domain.Shift{
				SiteID:                 opts.SiteID,
				Title:                  fmt.Sprintf("%s - %s", opts.SiteName, def.Name),
				Description:            fmt.Sprintf("Automatisch generierte Schicht (%s)", def.Name),
				Location:               opts.SiteName,
				StartTime:              start,
				EndTime:                end,
				RequiredEmployees:      int32(def.RequiredStaff),
				RequiredQualifications: opts.RequiredQualifications,
				Status:                 domain.ShiftStatusPlanned,
			})
		}
	}

	return shifts, nil
}

// GenerateForRange derives DaysAhead from the whole-day difference between
// endDate and the start date, rounded up and floored at one day.
func GenerateForRange(opts Options, endDate time.Time) ([]domain.Shift, error) {
	days := int((endDate.Sub(opts.StartDate).Hours() + 23) / 24)
	if days < 1 {
		days = 1
	}

	opts.DaysAhead = days
	return Generate(opts)
}

func resolveDefinitions(source Source) ([]ShiftDefinition, error) {
	switch src := source.(type) {
	case ExplicitShifts:
		definitions := make([]ShiftDefinition, len(src.Shifts))
		copy(definitions, src.Shifts)
		for i := range definitions {
			if len(definitions[i].Days) == 0 {
				definitions[i].Days = allDays
			}
		}
		return definitions, nil
	case TemplateRef:
		template, ok := LookupTemplate(src.TemplateID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, src.TemplateID)
		}
		return DistributeStaff(template, src.RequiredStaff), nil
	default:
		return nil, errors.New("keine Schichtquelle angegeben")
	}
}

// combine builds an absolute timestamp from a calendar day and an "HH:mm"
// time of day, in the day's location.
func combine(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("ungültige Uhrzeit %q", hhmm)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
