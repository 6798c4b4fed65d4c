package routers

import (
	"fmt"

	"nutrivida-service/internal/app/delivery/http/controllers"
	"nutrivida-service/internal/app/delivery/http/middlewares"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAttemptRoutes(router chi.Router, middlewares *middlewares.Middlewares, attemptController *controllers.AttemptController) {
	idPrefix := fmt.Sprintf("/{%s}", constvars.URLParamAttemptID)

	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireStaff).Post("/", attemptController.Allocate)

	router.Get("/", attemptController.ListMine)
	router.Get(idPrefix, attemptController.Get)
	router.Post(idPrefix+"/start", attemptController.Start)
	router.Put(idPrefix+"/answers", attemptController.SaveAnswer)
	router.Post(idPrefix+"/submit", attemptController.Submit)
	router.Get(idPrefix+"/result", attemptController.Result)
}
