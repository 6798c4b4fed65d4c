package routers

import (
	"fmt"

	"nutrivida-service/internal/app/delivery/http/controllers"
	"nutrivida-service/internal/app/delivery/http/middlewares"
	"nutrivida-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	idPattern := fmt.Sprintf("/{%s}", constvars.URLParamQuestionnaireID)

	router.Use(middlewares.Authenticate)

	router.Get("/", questionnaireController.Find)
	router.Get(idPattern, questionnaireController.FindByID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireStaff)
		r.Post("/", questionnaireController.Create)
		r.Put(idPattern, questionnaireController.Update)
		r.Delete(idPattern, questionnaireController.Delete)
	})
}
