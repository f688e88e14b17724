package controllers

import (
	"context"
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

type SpecificLessonController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	specificLessonControllerInstance *SpecificLessonController
	onceSpecificLessonController     sync.Once
)

func NewSpecificLessonController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *SpecificLessonController {
	onceSpecificLessonController.Do(func() {
		instance := &SpecificLessonController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
		specificLessonControllerInstance = instance
	})
	return specificLessonControllerInstance
}

func (ctrl *SpecificLessonController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "SpecificLessonController.FindAll")
	if !ok {
		return
	}

	day, err := parseDayQuery(r)
	if err != nil {
		ctrl.Log.Error("SpecificLessonController.FindAll invalid day",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindSpecificLessons(ctx, day)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "SpecificLessonController.FindAll", err)
		return
	}

	ctrl.Log.Info("SpecificLessonController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonCount, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecificLessonsSuccessMessage, result)
}

func (ctrl *SpecificLessonController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "SpecificLessonController.Create")
	if !ok {
		return
	}

	request := new(requests.CreateSpecificLesson)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SpecificLessonController.Create error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SpecificLessonController.Create validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CreateSpecificLesson(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "SpecificLessonController.Create", err)
		return
	}

	ctrl.Log.Info("SpecificLessonController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSpecificLessonSuccessMessage, result)
}

func (ctrl *SpecificLessonController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "SpecificLessonController.Update")
	if !ok {
		return
	}
	specificLessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "SpecificLessonController.Update", constvars.URLParamSpecificLessonID)
	if !ok {
		return
	}

	request := new(requests.UpdateSpecificLesson)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("SpecificLessonController.Update error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SpecificLessonController.Update validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.UpdateSpecificLesson(ctx, specificLessonID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "SpecificLessonController.Update", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSpecificLessonSuccessMessage, result)
}

func (ctrl *SpecificLessonController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "SpecificLessonController.Delete")
	if !ok {
		return
	}
	specificLessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "SpecificLessonController.Delete", constvars.URLParamSpecificLessonID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.ScheduleUsecase.DeleteSpecificLesson(ctx, specificLessonID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "SpecificLessonController.Delete", err)
		return
	}

	ctrl.Log.Info("SpecificLessonController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSpecificLessonSuccessMessage, nil)
}
