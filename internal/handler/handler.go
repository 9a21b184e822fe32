package handler

import (
	"math/rand"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/raid-bits/shift-compliance/backend/internal/config"
	"github.com/raid-bits/shift-compliance/backend/internal/randomizer"
	"github.com/raid-bits/shift-compliance/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	sampler     *randomizer.Sampler
	location    *time.Location

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		sampler:     randomizer.NewSampler(rand.NewSource(time.Now().UnixNano())),
		location:    location,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Healthz)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.GetAllEmployees)
			r.Post("/", h.CreateEmployee)
			r.Patch("/{employeeID}/shift", h.UpdateEmployeeShift)
		})

		r.Route("/job-documents", func(r chi.Router) {
			r.Post("/", h.CreateJobDocument)
			r.Route("/{date}", func(r chi.Router) {
				r.Use(h.jobDocument)
				r.Get("/", h.GetJobDocument)
				r.Get("/report", h.ExportRandomizerReport)
				r.Patch("/shift-detail", h.UpdateJobDocumentShiftDetail)
				r.Route("/users", func(r chi.Router) {
					r.Post("/", h.AddJobDocumentUser)
					r.Patch("/", h.UpdateJobDocumentUserStatuses)
					r.Delete("/{employeeID}", h.RemoveJobDocumentUser)
				})
				r.Route("/shifts/{shift}", func(r chi.Router) {
					r.Use(h.shiftName)
					r.Get("/employees", h.GetActiveEmployeesByShift)
					r.Post("/randomize", h.RunRandomizer)
				})
			})
		})

		r.Post("/notifications", h.SendNotifications)
	})
}
