package controllers

import (
	"context"
	"errors"
	"net/http"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// requestIDOrFail writes the error response itself when the request id
// middleware did not run.
func requestIDOrFail(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, requestID, operation string, err error) {
	log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// parseIDOrFail reads a non-negative integer url param.
func parseIDOrFail(log *zap.Logger, w http.ResponseWriter, r *http.Request, requestID, operation, param string) (int, bool) {
	id, err := utils.ParseIDParam(r, param)
	if err != nil {
		log.Error(operation+" invalid url param",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("param", param),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(err, param))
		return 0, false
	}
	return id, true
}

// parseDayQuery returns nil when the day query param is absent.
func parseDayQuery(r *http.Request) (*models.Weekday, error) {
	raw := r.URL.Query().Get(constvars.QueryParamsDay)
	if raw == "" {
		return nil, nil
	}
	day, err := models.ParseWeekday(raw)
	if err != nil {
		return nil, exceptions.ErrInvalidDay(err, raw)
	}
	return &day, nil
}
