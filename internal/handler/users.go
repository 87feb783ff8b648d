package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/utils"
	"github.com/wachplan-dev/wachplan/backend/internal/wage"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetAllUserInfo(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Mitarbeiterliste abgerufen", users)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username         string   `json:"username" validate:"required"`
		FullName         string   `json:"fullName" validate:"required"`
		Email            string   `json:"email" validate:"required,email"`
		Role             string   `json:"role" validate:"required,oneof=Administrator Einsatzleiter Sicherheitsmitarbeiter"`
		WageGroup        string   `json:"wageGroup" validate:"required"`
		BaseWageOverride *float64 `json:"baseWageOverride" validate:"omitempty,gt=0"`
		Qualifications   []string `json:"qualifications"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := wage.BaseHourlyWage(wage.Group(req.WageGroup)); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewUser.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Username:         req.Username,
		PasswordHash:     string(hashedPassword),
		FullName:         req.FullName,
		Email:            req.Email,
		Role:             domain.Role(req.Role),
		WageGroup:        wage.Group(req.WageGroup),
		BaseWageOverride: req.BaseWageOverride,
		Qualifications:   req.Qualifications,
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "users_username_key":
				h.badRequest(w, r, errors.New("Benutzername bereits vergeben"))
			case pgErr.ConstraintName == "users_email_key":
				h.badRequest(w, r, errors.New("E-Mail-Adresse bereits vergeben"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "create_user",
		To:   user.Email,
		Data: domain.CreateUserMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Mitarbeiter angelegt", user)
}

func (h *Handler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)
	h.successResponse(w, r, "Mitarbeiterdaten abgerufen", user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName         *string  `json:"fullName"`
		Email            *string  `json:"email" validate:"omitempty,email"`
		Role             *string  `json:"role" validate:"omitempty,oneof=Administrator Einsatzleiter Sicherheitsmitarbeiter"`
		WageGroup        *string  `json:"wageGroup"`
		BaseWageOverride *float64 `json:"baseWageOverride" validate:"omitempty,gt=0"`
		Qualifications   []string `json:"qualifications"`
		IsActive         *bool    `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.WageGroup != nil {
		if _, err := wage.BaseHourlyWage(wage.Group(*req.WageGroup)); err != nil {
			h.badRequest(w, r, err)
			return
		}
		user.WageGroup = wage.Group(*req.WageGroup)
	}
	if req.BaseWageOverride != nil {
		user.BaseWageOverride = req.BaseWageOverride
	}
	if req.Qualifications != nil {
		user.Qualifications = req.Qualifications
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "users_email_key":
				h.badRequest(w, r, errors.New("E-Mail-Adresse bereits vergeben"))
			case pgErr.ConstraintName == "users_username_key":
				h.badRequest(w, r, errors.New("Benutzername bereits vergeben"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "Aktualisierung fehlgeschlagen, bitte erneut versuchen")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Mitarbeiterdaten aktualisiert", user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if err := h.repository.DeleteUser(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Mitarbeiter gelöscht", nil)
}

func (h *Handler) UpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	var req struct {
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user.PasswordHash = string(hashedPassword)
	if err := h.repository.UpdateUser(user); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Passwort geändert", nil)
}

func (h *Handler) GetUserActivityWages(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	wages, err := h.repository.GetUserActivityWages(user.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Tätigkeitslöhne abgerufen", wages)
}

func (h *Handler) UpsertUserActivityWage(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	var req struct {
		ActivityType string  `json:"activityType" validate:"required"`
		HourlyWage   float64 `json:"hourlyWage" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	activityWage := &domain.UserActivityWage{
		UserID:       user.ID,
		ActivityType: wage.ActivityType(req.ActivityType),
		HourlyWage:   req.HourlyWage,
	}

	if err := h.repository.UpsertUserActivityWage(activityWage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Tätigkeitslohn gespeichert", activityWage)
}

func (h *Handler) DeleteUserActivityWage(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	var req struct {
		ActivityType string `json:"activityType" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.DeleteUserActivityWage(user.ID, wage.ActivityType(req.ActivityType)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Tätigkeitslohn entfernt", nil)
}
