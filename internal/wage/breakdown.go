package wage

import "math"

// Source names where the effective wage came from.
type Source string

const (
	SourceSite             Source = "Objekt-spezifisch"
	SourceEmployeeActivity Source = "MA-Tätigkeitsart"
	SourceEmployeeBase     Source = "MA-Basislohn"
	SourceTariff           Source = "BSDW Tarifvertrag"
)

// Overrides bundles the optional wage sources for one employee/site/activity
// combination. Nil fields mean "not configured".
type Overrides struct {
	EmployeeBaseWage     *float64 `json:"employeeBaseWage"`
	EmployeeActivityWage *float64 `json:"employeeActivityWage"`
	SiteWage             *float64 `json:"siteWage"`
}

type Breakdown struct {
	TariffWage           float64  `json:"tariffWage"`
	EmployeeBaseWage     *float64 `json:"employeeBaseWage,omitempty"`
	ActivityAdjustment   float64  `json:"activityAdjustment"`
	EmployeeActivityWage *float64 `json:"employeeActivityWage,omitempty"`
	SiteOverride         *float64 `json:"siteOverride,omitempty"`
	EffectiveWage        float64  `json:"effectiveWage"`
	Source               Source   `json:"source"`
}

// ComputeBreakdown resolves the effective hourly wage by strict precedence:
//
//	1. site-specific override
//	2. employee wage for the activity type
//	3. employee base wage override + activity adjustment
//	4. tariff base rate + activity adjustment
//
// The first configured source wins; sources never blend. Only the activity
// adjustment combines additively, and only with the base in cases 3 and 4.
func ComputeBreakdown(g Group, activity ActivityType, ov *Overrides) (*Breakdown, error) {
	tariff, err := BaseHourlyWage(g)
	if err != nil {
		return nil, err
	}

	if ov == nil {
		ov = &Overrides{}
	}

	b := &Breakdown{
		TariffWage:           tariff,
		EmployeeBaseWage:     ov.EmployeeBaseWage,
		ActivityAdjustment:   ActivityAdjustment(activity),
		EmployeeActivityWage: ov.EmployeeActivityWage,
		SiteOverride:         ov.SiteWage,
	}

	switch {
	case ov.SiteWage != nil:
		b.EffectiveWage = *ov.SiteWage
		b.Source = SourceSite
	case ov.EmployeeActivityWage != nil:
		b.EffectiveWage = *ov.EmployeeActivityWage
		b.Source = SourceEmployeeActivity
	case ov.EmployeeBaseWage != nil:
		b.EffectiveWage = round2(*ov.EmployeeBaseWage + b.ActivityAdjustment)
		b.Source = SourceEmployeeBase
	default:
		b.EffectiveWage = round2(tariff + b.ActivityAdjustment)
		b.Source = SourceTariff
	}

	return b, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
