package planner

// ShiftDefinition is a repeatable daily shift pattern. Times are "HH:mm" in
// 24h notation; an end time at or before the start time means the shift runs
// into the following day. Days holds weekday indices 0-6 with Sunday = 0.
type ShiftDefinition struct {
	Name          string `json:"name"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	RequiredStaff int    `json:"requiredStaff"`
	Days          []int  `json:"days"`
}

// Template is a named weekly shift pattern from the static catalog.
type Template struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Shifts            []ShiftDefinition `json:"shifts"`
	TotalHoursPerWeek float64           `json:"totalHoursPerWeek"`
}

var allDays = []int{0, 1, 2, 3, 4, 5, 6}
var workDays = []int{1, 2, 3, 4, 5}

// templateCatalog is the static shift-pattern catalog. It is populated here
// and never mutated at runtime.
var templateCatalog = map[string]*Template{
	"standard-3-schicht": {
		ID:   "standard-3-schicht",
		Name: "3-Schicht (24/7)",
		Shifts: []ShiftDefinition{
			{Name: "Frühschicht", StartTime: "06:00", EndTime: "14:00", RequiredStaff: 1, Days: allDays},
			{Name: "Spätschicht", StartTime: "14:00", EndTime: "22:00", RequiredStaff: 1, Days: allDays},
			{Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00", RequiredStaff: 1, Days: allDays},
		},
		TotalHoursPerWeek: 168,
	},
	"standard-2-schicht": {
		ID:   "standard-2-schicht",
		Name: "2-Schicht (24/7)",
		Shifts: []ShiftDefinition{
			{Name: "Tagschicht", StartTime: "06:00", EndTime: "18:00", RequiredStaff: 1, Days: allDays},
			{Name: "Nachtschicht", StartTime: "18:00", EndTime: "06:00", RequiredStaff: 1, Days: allDays},
		},
		TotalHoursPerWeek: 168,
	},
	"tagdienst": {
		ID:   "tagdienst",
		Name: "Tagdienst (Mo–Fr)",
		Shifts: []ShiftDefinition{
			{Name: "Tagdienst", StartTime: "08:00", EndTime: "18:00", RequiredStaff: 1, Days: workDays},
		},
		TotalHoursPerWeek: 50,
	},
	"nachtwache": {
		ID:   "nachtwache",
		Name: "Nachtwache (täglich)",
		Shifts: []ShiftDefinition{
			{Name: "Nachtwache", StartTime: "20:00", EndTime: "06:00", RequiredStaff: 1, Days: allDays},
		},
		TotalHoursPerWeek: 70,
	},
	"wochenenddienst": {
		ID:   "wochenenddienst",
		Name: "Wochenenddienst",
		Shifts: []ShiftDefinition{
			{Name: "Tagschicht", StartTime: "08:00", EndTime: "20:00", RequiredStaff: 1, Days: []int{0, 6}},
			{Name: "Nachtschicht", StartTime: "20:00", EndTime: "08:00", RequiredStaff: 1, Days: []int{0, 6}},
		},
		TotalHoursPerWeek: 48,
	},
}

// templateAliases maps the human-readable names used in security concept
// documents to canonical catalog ids.
var templateAliases = map[string]string{
	"3-Schicht (24/7)":     "standard-3-schicht",
	"3-Schicht":            "standard-3-schicht",
	"Vollschutz":           "standard-3-schicht",
	"2-Schicht (24/7)":     "standard-2-schicht",
	"2-Schicht":            "standard-2-schicht",
	"Tagdienst (Mo–Fr)":    "tagdienst",
	"Tagdienst":            "tagdienst",
	"Empfangsdienst":       "tagdienst",
	"Nachtwache (täglich)": "nachtwache",
	"Nachtwache":           "nachtwache",
	"Wochenenddienst":      "wochenenddienst",
}

// LookupTemplate resolves a template by id first, then by display-name alias.
// A miss is reported through the bool, not as an error.
func LookupTemplate(idOrAlias string) (*Template, bool) {
	if t, ok := templateCatalog[idOrAlias]; ok {
		return t, true
	}
	if id, ok := templateAliases[idOrAlias]; ok {
		return templateCatalog[id], true
	}
	return nil, false
}

// Templates lists the catalog in a stable order for listing endpoints.
func Templates() []*Template {
	ids := []string{"standard-3-schicht", "standard-2-schicht", "tagdienst", "nachtwache", "wochenenddienst"}
	out := make([]*Template, 0, len(ids))
	for _, id := range ids {
		out = append(out, templateCatalog[id])
	}
	return out
}

// DistributeStaff divides a total staff count evenly over the template's
// shifts. Each shift gets the floor share; the remainder goes one each to the
// first shifts in declaration order, which keeps the split deterministic.
func DistributeStaff(t *Template, totalRequiredStaff int) []ShiftDefinition {
	shifts := make([]ShiftDefinition, len(t.Shifts))
	copy(shifts, t.Shifts)

	if len(shifts) == 0 {
		return shifts
	}

	base := totalRequiredStaff / len(shifts)
	remainder := totalRequiredStaff % len(shifts)

	for i := range shifts {
		shifts[i].RequiredStaff = base
		if i < remainder {
			shifts[i].RequiredStaff++
		}
	}

	return shifts
}
