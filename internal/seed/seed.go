package seed

import (
	"log/slog"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/planner"
	"github.com/wachplan-dev/wachplan/backend/internal/repository"
)

// demoSites are the fixtures for a demo installation. Each site names the
// catalog template its shifts are generated from.
var demoSites = []struct {
	site       domain.Site
	templateID string
	staff      int
}{
	{
		site: domain.Site{
			Name:                   "Logistikzentrum Nord",
			Address:                "Hafenstraße 12, 20457 Hamburg",
			Description:            "Werkschutz mit Torkontrolle, rund um die Uhr besetzt",
			RequiredQualifications: []string{"Sachkundeprüfung §34a"},
		},
		templateID: "standard-3-schicht",
		staff:      6,
	},
	{
		site: domain.Site{
			Name:        "Bürokomplex Mitte",
			Address:     "Kanzlerplatz 3, 10117 Berlin",
			Description: "Empfangs- und Pfortendienst werktags",
		},
		templateID: "tagdienst",
		staff:      2,
	},
	{
		site: domain.Site{
			Name:                   "Baustelle Südring",
			Address:                "Südring 88, 70565 Stuttgart",
			Description:            "Nächtliche Bewachung der Baustelleneinrichtung",
			RequiredQualifications: []string{"Sachkundeprüfung §34a", "Erste Hilfe"},
		},
		templateID: "nachtwache",
		staff:      2,
	},
}

var demoTemplates = []domain.ShiftTemplate{
	{
		Name:        "Werkschutz 3-Schicht",
		Description: "Früh-, Spät- und Nachtschicht, täglich",
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Frühschicht", StartTime: "06:00", EndTime: "14:00", RequiredStaff: 2, ApplicableDays: []int32{0, 1, 2, 3, 4, 5, 6}},
			{Name: "Spätschicht", StartTime: "14:00", EndTime: "22:00", RequiredStaff: 2, ApplicableDays: []int32{0, 1, 2, 3, 4, 5, 6}},
			{Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00", RequiredStaff: 1, ApplicableDays: []int32{0, 1, 2, 3, 4, 5, 6}},
		},
	},
	{
		Name:        "Empfang werktags",
		Description: "Einfacher Empfangsdienst Montag bis Freitag",
		Shifts: []domain.ShiftTemplateShift{
			{Name: "Empfang", StartTime: "07:30", EndTime: "17:30", RequiredStaff: 1, ApplicableDays: []int32{1, 2, 3, 4, 5}},
		},
	},
}

// SeedDemoData fills an empty database with a handful of sites, company
// templates and two weeks of generated shifts per site.
func SeedDemoData(r *repository.Repository) {
	for i := range demoTemplates {
		st := demoTemplates[i]
		if err := r.CreateShiftTemplate(&st); err != nil {
			slog.Error("Schichtmodell konnte nicht angelegt werden", "name", st.Name, "error", err)
			continue
		}
		slog.Info("Schichtmodell angelegt", "name", st.Name, "id", st.ID)
	}

	startDate := time.Now().AddDate(0, 0, 1)
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.Local)

	for _, fixture := range demoSites {
		site := fixture.site
		if err := r.CreateSite(&site); err != nil {
			slog.Error("Objekt konnte nicht angelegt werden", "name", site.Name, "error", err)
			continue
		}
		slog.Info("Objekt angelegt", "name", site.Name, "id", site.ID)

		shifts, err := planner.Generate(planner.Options{
			SiteID:                 site.ID,
			SiteName:               site.Name,
			Source:                 planner.TemplateRef{TemplateID: fixture.templateID, RequiredStaff: fixture.staff},
			StartDate:              startDate,
			DaysAhead:              14,
			RequiredQualifications: site.RequiredQualifications,
		})
		if err != nil {
			slog.Error("Schichten konnten nicht generiert werden", "site", site.Name, "error", err)
			continue
		}

		inserted, err := r.CreateShifts(shifts)
		if err != nil {
			slog.Error("Schichten konnten nicht gespeichert werden", "site", site.Name, "error", err)
			continue
		}

		stats := planner.Summarize(shifts)
		slog.Info("Schichten generiert", "site", site.Name, "inserted", inserted, "totalRequiredEmployees", stats.TotalRequiredEmployees)
	}

	slog.Info("Demodaten eingespielt")
}
