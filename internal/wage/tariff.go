package wage

import "fmt"

// Group is a BSDW tariff wage group (Lohngruppe).
type Group string

const (
	GroupLohngruppe1 Group = "Lohngruppe 1"
	GroupLohngruppe2 Group = "Lohngruppe 2"
	GroupLohngruppe3 Group = "Lohngruppe 3"
	GroupLohngruppe4 Group = "Lohngruppe 4"
	GroupLohngruppe5 Group = "Lohngruppe 5"
)

// ActivityType classifies the kind of work performed during a shift.
type ActivityType string

const (
	ActivityObjektschutz   ActivityType = "Objektschutz"
	ActivityRevierdienst   ActivityType = "Revierdienst"
	ActivityEmpfangsdienst ActivityType = "Empfangsdienst"
	ActivityVeranstaltung  ActivityType = "Veranstaltungsschutz"
	ActivityWerttransport  ActivityType = "Geld- und Werttransport"
	ActivityBrandwache     ActivityType = "Brandwache"
)

// baseRates holds the tariff base hourly wage per group. The table is loaded
// once at process start and never mutated.
var baseRates = map[Group]float64{
	GroupLohngruppe1: 13.50,
	GroupLohngruppe2: 14.10,
	GroupLohngruppe3: 15.00,
	GroupLohngruppe4: 16.20,
	GroupLohngruppe5: 17.80,
}

// activityAdjustments lists the activity-based additions to the base wage.
// Activities without an entry carry no adjustment.
var activityAdjustments = map[ActivityType]float64{
	ActivityRevierdienst:  0.75,
	ActivityVeranstaltung: 1.25,
	ActivityWerttransport: 2.00,
	ActivityBrandwache:    1.50,
}

// BaseHourlyWage returns the tariff base rate of a wage group. An unknown
// group is a configuration bug and is reported as an error instead of
// silently falling back to zero.
func BaseHourlyWage(g Group) (float64, error) {
	rate, ok := baseRates[g]
	if !ok {
		return 0, fmt.Errorf("unbekannte Lohngruppe: %q", g)
	}
	return rate, nil
}

// ActivityAdjustment returns the wage addition for an activity type. Not every
// activity carries a differential, so a missing entry yields 0 and no error.
func ActivityAdjustment(a ActivityType) float64 {
	return activityAdjustments[a]
}

// Groups returns all known wage groups for listing endpoints.
func Groups() []Group {
	return []Group{
		GroupLohngruppe1,
		GroupLohngruppe2,
		GroupLohngruppe3,
		GroupLohngruppe4,
		GroupLohngruppe5,
	}
}

// Activities returns all known activity types for listing endpoints.
func Activities() []ActivityType {
	return []ActivityType{
		ActivityObjektschutz,
		ActivityRevierdienst,
		ActivityEmpfangsdienst,
		ActivityVeranstaltung,
		ActivityWerttransport,
		ActivityBrandwache,
	}
}
