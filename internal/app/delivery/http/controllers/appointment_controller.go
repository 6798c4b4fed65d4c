package controllers

import (
	"context"
	"net/http"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	SessionService     contracts.SessionService
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, sessionService contracts.SessionService) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		SessionService:     sessionService,
	}
}

func (ctrl *AppointmentController) ListMine(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAppointmentsByPatient(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, response)
}
