package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/de"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	de_translations "github.com/go-playground/validator/v10/translations/de"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/wachplan-dev/wachplan/backend/internal/config"
	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	de := de.New()
	uni := ut.New(de, de)
	trans, _ := uni.GetTranslator("de")
	if err := de_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a valid session.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Get("/time-entries", h.GetMyTimeEntries)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo) // dispatchers need the staff list for planning
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
				r.Route("/activity-wages", func(r chi.Router) {
					r.Get("/", h.GetUserActivityWages)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.UpsertUserActivityWage)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUserActivityWage)
				})
			})
		})

		r.Route("/sites", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/", h.CreateSite)
			r.Get("/", h.GetAllSites)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.site)
				r.Get("/", h.GetSite)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Patch("/", h.UpdateSite)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteSite)
				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", h.GetSiteShifts)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/generate", h.GenerateShifts)
					r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/generate/preview", h.PreviewGeneratedShifts)
				})
				r.Route("/incidents", func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.preventInactiveEmployee)
					r.Get("/", h.GetSiteIncidents)
					r.Post("/", h.CreateIncident)
				})
			})
		})

		r.Route("/shifts/{id}", func(r chi.Router) {
			r.Use(h.shift)
			r.Get("/", h.GetShift)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Patch("/status", h.UpdateShiftStatus)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Delete("/", h.DeleteShift)
		})

		r.Route("/shift-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/", h.CreateShiftTemplate)
			r.Get("/", h.GetAllShiftTemplates)
			r.Get("/catalog", h.GetPlannerCatalog)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftTemplate)
				r.Get("/", h.GetShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Patch("/", h.UpdateShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Delete("/", h.DeleteShiftTemplate)
			})
		})

		r.Route("/incidents/{id}", func(r chi.Router) {
			r.Use(h.incident)
			r.Get("/", h.GetIncident)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Patch("/", h.UpdateIncident)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteIncident)
		})

		r.Route("/time-entries", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.preventInactiveEmployee)
			r.Post("/clock-in", h.ClockIn)
			r.Post("/clock-out", h.ClockOut)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.timeEntry)
				r.Get("/", h.GetTimeEntry)
				r.Get("/wage", h.GetTimeEntryWage)
			})
		})

		r.Route("/wage", func(r chi.Router) {
			r.Get("/catalog", h.GetWageCatalog)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/breakdown", h.GetWageBreakdown)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleDispatcher})).Post("/calculate", h.CalculateWage)
		})
	})
}
