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

type LessonController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	lessonControllerInstance *LessonController
	onceLessonController     sync.Once
)

func NewLessonController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *LessonController {
	onceLessonController.Do(func() {
		instance := &LessonController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
		lessonControllerInstance = instance
	})
	return lessonControllerInstance
}

func (ctrl *LessonController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.FindAll")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindAllLessons(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.FindAll", err)
		return
	}

	ctrl.Log.Info("LessonController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLessonsSuccessMessage, result)
}

func (ctrl *LessonController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.FindByID")
	if !ok {
		return
	}
	lessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "LessonController.FindByID", constvars.URLParamLessonID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.FindLessonByID(ctx, lessonID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLessonSuccessMessage, result)
}

func (ctrl *LessonController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.Create")
	if !ok {
		return
	}

	request := new(requests.CreateLesson)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("LessonController.Create error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("LessonController.Create validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.CreateLesson(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.Create", err)
		return
	}

	ctrl.Log.Info("LessonController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLessonSuccessMessage, result)
}

func (ctrl *LessonController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.Update")
	if !ok {
		return
	}
	lessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "LessonController.Update", constvars.URLParamLessonID)
	if !ok {
		return
	}

	request := new(requests.UpdateLesson)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("LessonController.Update error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("LessonController.Update validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.UpdateLesson(ctx, lessonID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.Update", err)
		return
	}

	ctrl.Log.Info("LessonController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLessonSuccessMessage, result)
}

func (ctrl *LessonController) UpdateHomework(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.UpdateHomework")
	if !ok {
		return
	}
	lessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "LessonController.UpdateHomework", constvars.URLParamLessonID)
	if !ok {
		return
	}

	request := new(requests.UpdateHomework)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("LessonController.UpdateHomework error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("LessonController.UpdateHomework validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.UpdateHomework(ctx, lessonID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.UpdateHomework", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHomeworkSuccessMessage, result)
}

func (ctrl *LessonController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LessonController.Delete")
	if !ok {
		return
	}
	lessonID, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "LessonController.Delete", constvars.URLParamLessonID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.ScheduleUsecase.DeleteLesson(ctx, lessonID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LessonController.Delete", err)
		return
	}

	ctrl.Log.Info("LessonController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLessonSuccessMessage, nil)
}
