package controllers

import (
	"context"
	"net/http"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/exceptions"
	"nutrivida-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
	}
}

// Upload stores a clinic material from a multipart form. Staff only.
func (ctrl *DocumentController) Upload(w http.ResponseWriter, r *http.Request) {
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	err = ctrl.DocumentUsecase.UploadDocument(ctx, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, nil)
}

func (ctrl *DocumentController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.ListDocuments(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListDocumentsSuccessMessage, response)
}

func (ctrl *DocumentController) GetLink(w http.ResponseWriter, r *http.Request) {
	documentName := chi.URLParam(r, constvars.URLParamDocumentName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.GetDocumentLink(ctx, documentName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentLinkSuccessMessage, response)
}
