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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AttemptController struct {
	Log            *zap.Logger
	AttemptUsecase contracts.AttemptUsecase
	SessionService contracts.SessionService
}

func NewAttemptController(logger *zap.Logger, attemptUsecase contracts.AttemptUsecase, sessionService contracts.SessionService) *AttemptController {
	return &AttemptController{
		Log:            logger,
		AttemptUsecase: attemptUsecase,
		SessionService: sessionService,
	}
}

// Allocate assigns a questionnaire to a patient. Staff only.
func (ctrl *AttemptController) Allocate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AllocateAttempt)
	err := json.NewDecoder(r.Body).Decode(&request)
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

	response, err := ctrl.AttemptUsecase.AllocateAttempt(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AllocateAttemptSuccessMessage, response)
}

func (ctrl *AttemptController) ListMine(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttemptUsecase.FindAttemptsByPatient(ctx, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAttemptsSuccessMessage, response)
}

func (ctrl *AttemptController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttemptUsecase.FindAttempt(ctx, attemptID, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttemptSuccessMessage, response)
}

func (ctrl *AttemptController) Start(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttemptUsecase.StartAttempt(ctx, attemptID, session.UserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StartAttemptSuccessMessage, response)
}

func (ctrl *AttemptController) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)

	request := new(requests.SaveAnswer)
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

	response, err := ctrl.AttemptUsecase.SaveAnswer(ctx, attemptID, session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveAnswerSuccessMessage, response)
}

func (ctrl *AttemptController) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)

	request := new(requests.SubmitAttempt)
	if r.Body != nil && r.ContentLength != 0 {
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttemptUsecase.SubmitAttempt(ctx, attemptID, session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitAttemptSuccessMessage, response)
}

func (ctrl *AttemptController) Result(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context(), ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	attemptID := chi.URLParam(r, constvars.URLParamAttemptID)

	// Staff may review any patient's result.
	patientID := session.UserID
	if session.Role == constvars.RoleTypeStaff {
		patientID = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttemptUsecase.FindResult(ctx, attemptID, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetResultSuccessMessage, response)
}
