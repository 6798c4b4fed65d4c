package routers

import (
	"fmt"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/delivery/http/controllers"
	"nutrivida-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth          *controllers.AuthController
	Questionnaire *controllers.QuestionnaireController
	Attempt       *controllers.AttemptController
	Appointment   *controllers.AppointmentController
	Fodmap        *controllers.FodmapController
	Document      *controllers.DocumentController
	Payment       *controllers.PaymentController
	Chat          *controllers.ChatController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestLogger(accessLog))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, middlewares, ctrls.Questionnaire)
			})

			r.Route("/attempts", func(r chi.Router) {
				attachAttemptRoutes(r, middlewares, ctrls.Attempt)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
			})

			r.Route("/fodmap", func(r chi.Router) {
				attachFodmapRoutes(r, middlewares, ctrls.Fodmap)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, middlewares, ctrls.Document)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, ctrls.Payment)
			})

			r.Route("/chat", func(r chi.Router) {
				attachChatRoutes(r, middlewares, ctrls.Chat)
			})
		})
	})
}
