package controllers

import (
	"context"
	"net/http"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type LiveStatusController struct {
	Log               *zap.Logger
	LiveStatusUsecase contracts.LiveStatusUsecase
}

var (
	liveStatusControllerInstance *LiveStatusController
	onceLiveStatusController     sync.Once
)

func NewLiveStatusController(logger *zap.Logger, liveStatusUsecase contracts.LiveStatusUsecase) *LiveStatusController {
	onceLiveStatusController.Do(func() {
		instance := &LiveStatusController{
			Log:               logger,
			LiveStatusUsecase: liveStatusUsecase,
		}
		liveStatusControllerInstance = instance
	})
	return liveStatusControllerInstance
}

func (ctrl *LiveStatusController) GetStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LiveStatusController.GetStatus")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.LiveStatusUsecase.GetStatus(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LiveStatusController.GetStatus", err)
		return
	}

	ctrl.Log.Info("LiveStatusController.GetStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKindKey, result.Kind),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStatusSuccessMessage, result)
}

func (ctrl *LiveStatusController) GetOverview(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LiveStatusController.GetOverview")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.LiveStatusUsecase.GetOverview(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LiveStatusController.GetOverview", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOverviewSuccessMessage, result)
}

func (ctrl *LiveStatusController) FindHomeworkDue(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDOrFail(ctrl.Log, w, r, "LiveStatusController.FindHomeworkDue")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.LiveStatusUsecase.FindHomeworkDue(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, requestID, "LiveStatusController.FindHomeworkDue", err)
		return
	}

	ctrl.Log.Info("LiveStatusController.FindHomeworkDue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHomeworkDueCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHomeworkDueSuccessMessage, result)
}
