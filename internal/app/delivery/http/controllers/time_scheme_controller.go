package controllers

import (
	"context"
	"net/http"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TimeSchemeController struct {
	Log               *zap.Logger
	TimeSchemeUsecase contracts.TimeSchemeUsecase
	Clock             func() time.Time
}

var (
	timeSchemeControllerInstance *TimeSchemeController
	onceTimeSchemeController     sync.Once
)

func NewTimeSchemeController(logger *zap.Logger, timeSchemeUsecase contracts.TimeSchemeUsecase) *TimeSchemeController {
	onceTimeSchemeController.Do(func() {
		instance := &TimeSchemeController{
			Log:               logger,
			TimeSchemeUsecase: timeSchemeUsecase,
			Clock:             time.Now,
		}
		timeSchemeControllerInstance = instance
	})
	return timeSchemeControllerInstance
}

func (ctrl *TimeSchemeController) Get(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.Get")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.Get(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.Get", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSchemeSuccessMessage, result)
}

func (ctrl *TimeSchemeController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.Update")
	if !ok {
		return
	}

	request := new(requests.UpdateTimeScheme)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("TimeSchemeController.Update error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.Update(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.Update", err)
		return
	}

	ctrl.Log.Info("TimeSchemeController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTimeSchemeSuccessMessage, result)
}

func (ctrl *TimeSchemeController) Reset(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.Reset")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.Reset(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.Reset", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetTimeSchemeSuccessMessage, result)
}

func (ctrl *TimeSchemeController) AddBreak(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.AddBreak")
	if !ok {
		return
	}

	request := new(requests.BreakLength)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("TimeSchemeController.AddBreak error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.AddBreak(ctx, request.Length)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.AddBreak", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTimeSchemeSuccessMessage, result)
}

func (ctrl *TimeSchemeController) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.UpdateBreak")
	if !ok {
		return
	}
	index, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "TimeSchemeController.UpdateBreak", constvars.URLParamBreakIndex)
	if !ok {
		return
	}

	request := new(requests.BreakLength)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("TimeSchemeController.UpdateBreak error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.UpdateBreak(ctx, index, request.Length)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.UpdateBreak", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTimeSchemeSuccessMessage, result)
}

func (ctrl *TimeSchemeController) RemoveBreak(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.RemoveBreak")
	if !ok {
		return
	}
	index, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "TimeSchemeController.RemoveBreak", constvars.URLParamBreakIndex)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.RemoveBreak(ctx, index)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.RemoveBreak", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTimeSchemeSuccessMessage, result)
}

// FindDayGrid defaults to the current weekday when no day is given.
func (ctrl *TimeSchemeController) FindDayGrid(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.FindDayGrid")
	if !ok {
		return
	}

	day, err := parseDayQuery(r)
	if err != nil {
		ctrl.Log.Error("TimeSchemeController.FindDayGrid invalid day",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if day == nil {
		today := models.WeekdayOf(ctrl.Clock())
		day = &today
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.FindDayGrid(ctx, *day)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.FindDayGrid", err)
		return
	}

	ctrl.Log.Info("TimeSchemeController.FindDayGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, day.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDayGridSuccessMessage, result)
}

func (ctrl *TimeSchemeController) FindPeriod(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "TimeSchemeController.FindPeriod")
	if !ok {
		return
	}
	lessonNumber, ok := parseIDOrFail(ctrl.Log, w, r, requestID, "TimeSchemeController.FindPeriod", constvars.URLParamLessonNumber)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.TimeSchemeUsecase.FindPeriod(ctx, lessonNumber)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "TimeSchemeController.FindPeriod", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPeriodSuccessMessage, result)
}
