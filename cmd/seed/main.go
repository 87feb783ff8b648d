package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/wachplan-dev/wachplan/backend/internal/config"
	"github.com/wachplan-dev/wachplan/backend/internal/planner"
	"github.com/wachplan-dev/wachplan/backend/internal/repository"
	"github.com/wachplan-dev/wachplan/backend/internal/seed"
	"github.com/wachplan-dev/wachplan/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var siteID int64
	var templateID string
	var staff int

	flag.IntVar(&op, "op", 0, "Auszuführende Operation (1: zufällige Mitarbeiter, 2: zufällige Schichtmodelle, 3: zufällige Objekte, 4: Schichten für ein Objekt generieren, 5: Demodaten)")
	flag.IntVar(&n, "n", 5, "Anzahl der einzufügenden Datensätze bzw. Tage")
	flag.Int64Var(&siteID, "site-id", 0, "Objekt-ID für die Schichtgenerierung")
	flag.StringVar(&templateID, "template", "standard-3-schicht", "Katalog-Schichtmodell für die Schichtgenerierung")
	flag.IntVar(&staff, "staff", 3, "Gesamtpersonal für die Schichtgenerierung")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Konfiguration konnte nicht geladen werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("Verbindungspool konnte nicht erstellt werden", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect yet, so ping explicitly.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("Datenbank nicht erreichbar", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("Keine Operation angegeben")
	case 1:
		if n <= 0 {
			slog.Error("Bitte eine gültige Anzahl angeben")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("Zufälliger Mitarbeiter konnte nicht erzeugt werden", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("Mitarbeiter konnte nicht eingefügt werden", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("Mitarbeiter eingefügt", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("Bitte eine gültige Anzahl angeben")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				st := utils.GenerateRandomShiftTemplate()
				if err := repo.CreateShiftTemplate(st); err != nil {
					slog.Error("Schichtmodell konnte nicht eingefügt werden", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("Schichtmodelle eingefügt", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("Bitte eine gültige Anzahl angeben")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				site := utils.GenerateRandomSite()
				if err := repo.CreateSite(site); err != nil {
					slog.Error("Objekt konnte nicht eingefügt werden", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("Objekte eingefügt", slog.Int("count", n-cnt))
		}
	case 4:
		if siteID <= 0 {
			slog.Error("Bitte eine gültige Objekt-ID angeben")
			return
		}

		site, err := repo.GetSiteByID(siteID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				slog.Error("Das angegebene Objekt existiert nicht", slog.Int64("site_id", siteID))
			default:
				slog.Error("Objekt konnte nicht geladen werden", slog.String("error", err.Error()))
			}
			return
		}

		startDate := time.Now().AddDate(0, 0, 1)
		startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.Local)

		shifts, err := planner.Generate(planner.Options{
			SiteID:                 site.ID,
			SiteName:               site.Name,
			Source:                 planner.TemplateRef{TemplateID: templateID, RequiredStaff: staff},
			StartDate:              startDate,
			DaysAhead:              n,
			RequiredQualifications: site.RequiredQualifications,
		})
		if err != nil {
			slog.Error("Schichten konnten nicht generiert werden", slog.String("error", err.Error()))
			return
		}

		inserted, err := repo.CreateShifts(shifts)
		if err != nil {
			slog.Error("Schichten konnten nicht gespeichert werden", slog.String("error", err.Error()))
			return
		}

		slog.Info("Schichten generiert", slog.Int("generated", len(shifts)), slog.Int("inserted", inserted))
	case 5:
		seed.SeedDemoData(repo)
	default:
		slog.Error("Unbekannte Operation")
	}
}
