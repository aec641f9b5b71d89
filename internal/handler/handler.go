package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shifa-dev/clinic-desk/backend/internal/config"
	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
	"github.com/shifa-dev/clinic-desk/backend/internal/repository"
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
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
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

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in staff member
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/patients", func(r chi.Router) {
			r.Post("/", h.CreatePatient)
			r.Get("/", h.GetAllPatients)
			r.Get("/search", h.SearchPatients)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.patientInfo)
				r.Get("/", h.GetPatient)
				r.Patch("/", h.UpdatePatient)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePatient)
			})
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", h.GetWeeklySchedule)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.ReplaceWeeklySchedule)
			r.Get("/slots", h.GetAvailableSlots)
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", h.CreateAppointment)
			r.Get("/", h.GetAppointmentsByDate)
			r.Get("/queue", h.GetVisitQueue)
			r.Get("/calendar", h.GetWeeklyCalendar)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.appointmentInfo)
				r.Get("/", h.GetAppointment)
				r.Patch("/status", h.UpdateAppointmentStatus)
				r.Delete("/", h.CancelAppointment)
			})
		})

		r.Get("/stats/overview", h.GetOverviewStats)

		r.Route("/clinic-profile", func(r chi.Router) {
			r.Get("/", h.GetClinicProfile)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Put("/", h.UpdateClinicProfile)
		})
	})
}
