package controllers

import (
	"context"
	"net/http"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/exceptions"
	"nutrivida-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FodmapController struct {
	Log            *zap.Logger
	FodmapUsecase  contracts.FodmapUsecase
	SessionService contracts.SessionService
}

func NewFodmapController(logger *zap.Logger, fodmapUsecase contracts.FodmapUsecase, sessionService contracts.SessionService) *FodmapController {
	return &FodmapController{
		Log:            logger,
		FodmapUsecase:  fodmapUsecase,
		SessionService: sessionService,
	}
}

func (ctrl *FodmapController) GetChecklist(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FodmapUsecase.GetChecklist(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFodmapChecklistSuccessMessage, response)
}

func (ctrl *FodmapController) SaveTolerance(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SaveFodmapTolerance)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FodmapUsecase.SaveTolerance(ctx, session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveFodmapToleranceSuccessMessage, response)
}
