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

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.ContextSessionID).(string)

	request := new(requests.ChatMessage)
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

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.SendMessage(ctx, sessionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatCompletionSuccessMessage, response)
}
