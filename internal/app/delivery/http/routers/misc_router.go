package routers

import (
	"fmt"

	"nutrivida-service/internal/app/delivery/http/controllers"
	"nutrivida-service/internal/app/delivery/http/middlewares"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", appointmentController.ListMine)
}

func attachFodmapRoutes(router chi.Router, middlewares *middlewares.Middlewares, fodmapController *controllers.FodmapController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", fodmapController.GetChecklist)
	router.Put("/", fodmapController.SaveTolerance)
}

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *controllers.DocumentController) {
	namePattern := fmt.Sprintf("/{%s}/link", constvars.URLParamDocumentName)

	router.Use(middlewares.Authenticate)
	router.Get("/", documentController.List)
	router.Get(namePattern, documentController.GetLink)
	router.With(middlewares.RequireStaff).Post("/", documentController.Upload)
}

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/mbway", paymentController.InitiateMbway)
}

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", chatController.SendMessage)
}
