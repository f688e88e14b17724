package controllers

import (
	"context"
	"io"
	"net/http"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const multipartMemoryLimit = 8 << 20

type ShareController struct {
	Log          *zap.Logger
	ShareUsecase contracts.ShareUsecase
}

var (
	shareControllerInstance *ShareController
	onceShareController     sync.Once
)

func NewShareController(logger *zap.Logger, shareUsecase contracts.ShareUsecase) *ShareController {
	onceShareController.Do(func() {
		instance := &ShareController{
			Log:          logger,
			ShareUsecase: shareUsecase,
		}
		shareControllerInstance = instance
	})
	return shareControllerInstance
}

// Export streams the schedule document as a .schoe attachment.
func (ctrl *ShareController) Export(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "ShareController.Export")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payload, err := ctrl.ShareUsecase.Export(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "ShareController.Export", err)
		return
	}

	fileName := utils.GenerateExportFileName(r.URL.Query().Get(constvars.QueryParamsFileName))
	ctrl.Log.Info("ShareController.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, fileName),
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
	)
	utils.BuildFileResponse(w, fileName, constvars.MIMEApplicationJSONCharsetUTF8, payload)
}

// Import takes the document as the raw request body.
func (ctrl *ShareController) Import(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "ShareController.Import")
	if !ok {
		return
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		ctrl.Log.Error("ShareController.Import error reading body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadRequestBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ShareUsecase.Import(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "ShareController.Import", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ImportSuccessMessage, result)
}

// ImportFile takes the document as a multipart upload in the "file" field.
func (ctrl *ShareController) ImportFile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "ShareController.ImportFile")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		ctrl.Log.Error("ShareController.ImportFile error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadRequestBody(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFieldFile)
	if err != nil {
		ctrl.Log.Error("ShareController.ImportFile missing form file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingFormFile(err, constvars.FormFieldFile))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		ctrl.Log.Error("ShareController.ImportFile error reading form file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotReadRequestBody(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ShareUsecase.ImportFile(ctx, header.Filename, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "ShareController.ImportFile", err)
		return
	}

	ctrl.Log.Info("ShareController.ImportFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, header.Filename),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ImportSuccessMessage, result)
}

func (ctrl *ShareController) ExportArchive(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "ShareController.ExportArchive")
	if !ok {
		return
	}

	request := new(requests.ExportArchive)
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil && err != io.EOF {
			ctrl.Log.Error("ShareController.ExportArchive error decoding JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ShareController.ExportArchive validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ShareUsecase.ExportArchive(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "ShareController.ExportArchive", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportArchiveSuccessMessage, result)
}
