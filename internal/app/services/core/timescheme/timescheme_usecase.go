package timescheme

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
	"schoolbell-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type timeSchemeUsecase struct {
	// writeMu serializes mutate-and-persist sequences, mu guards scheme.
	writeMu sync.Mutex
	mu      sync.RWMutex
	scheme  models.TimeScheme

	Gateway  contracts.PersistenceGateway
	Schedule contracts.ScheduleReader
	Log      *zap.Logger
}

func NewTimeSchemeUsecase(
	gateway contracts.PersistenceGateway,
	schedule contracts.ScheduleReader,
	logger *zap.Logger,
) contracts.TimeSchemeUsecase {
	return &timeSchemeUsecase{
		scheme:   models.DefaultTimeScheme(),
		Gateway:  gateway,
		Schedule: schedule,
		Log:      logger,
	}
}

// Load replaces the in-memory scheme with the stored one. A missing or
// unreadable blob leaves the default scheme in place.
func (uc *timeSchemeUsecase) Load(ctx context.Context) error {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	var stored models.TimeScheme
	found, err := persistence.LoadJSON(ctx, uc.Gateway, constvars.PersistenceKeyTimeScheme, &stored)
	if err != nil {
		uc.Log.Error("timeSchemeUsecase.Load error loading time scheme",
			zap.String(constvars.LoggingPersistenceKey, constvars.PersistenceKeyTimeScheme),
			zap.Error(err),
		)
		uc.set(models.DefaultTimeScheme())
		return err
	}
	if !found {
		uc.Log.Info("timeSchemeUsecase.Load no stored time scheme, using default")
		uc.set(models.DefaultTimeScheme())
		return nil
	}

	uc.set(stored)
	uc.Log.Info("timeSchemeUsecase.Load succeeded",
		zap.Any(constvars.LoggingTimeSchemeKey, stored),
	)
	return nil
}

func (uc *timeSchemeUsecase) Current() models.TimeScheme {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.scheme.Clone()
}

func (uc *timeSchemeUsecase) Get(ctx context.Context) (*responses.TimeScheme, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSchemeUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := uc.Current().ConvertIntoResponse()
	return &response, nil
}

func (uc *timeSchemeUsecase) Update(ctx context.Context, request *requests.UpdateTimeScheme) (*responses.TimeScheme, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSchemeUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patch := models.TimeSchemePatch{
		LessonLength:            request.LessonLength,
		Breaks:                  request.Breaks,
		DefaultBreak:            request.DefaultBreak,
		CoupleMiddleBreakLength: request.CoupleMiddleBreakLength,
		IsPairMode:              request.IsPairMode,
	}
	if request.Start != nil {
		start, err := models.ParseClockTime(*request.Start)
		if err != nil {
			uc.Log.Error("timeSchemeUsecase.Update invalid start time",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.BuildNewCustomError(err, constvars.StatusBadRequest, "start "+constvars.CustomValidationErrorMessages["clock"], constvars.ErrDevInvalidInput)
		}
		patch.Start = &start
	}

	return uc.mutate(ctx, "timeSchemeUsecase.Update", func(current models.TimeScheme) (models.TimeScheme, error) {
		return current.Apply(patch), nil
	})
}

func (uc *timeSchemeUsecase) Replace(ctx context.Context, scheme models.TimeScheme) error {
	_, err := uc.mutate(ctx, "timeSchemeUsecase.Replace", func(models.TimeScheme) (models.TimeScheme, error) {
		return scheme.Clone(), nil
	})
	return err
}

func (uc *timeSchemeUsecase) Reset(ctx context.Context) (*responses.TimeScheme, error) {
	return uc.mutate(ctx, "timeSchemeUsecase.Reset", func(models.TimeScheme) (models.TimeScheme, error) {
		return models.DefaultTimeScheme(), nil
	})
}

func (uc *timeSchemeUsecase) AddBreak(ctx context.Context, length int) (*responses.TimeScheme, error) {
	return uc.mutate(ctx, "timeSchemeUsecase.AddBreak", func(current models.TimeScheme) (models.TimeScheme, error) {
		current.Breaks = append(current.Breaks, length)
		return current, nil
	})
}

func (uc *timeSchemeUsecase) UpdateBreak(ctx context.Context, index, length int) (*responses.TimeScheme, error) {
	return uc.mutate(ctx, "timeSchemeUsecase.UpdateBreak", func(current models.TimeScheme) (models.TimeScheme, error) {
		if index < 0 || index >= len(current.Breaks) {
			return current, exceptions.ErrBreakIndexOutOfRange(index, len(current.Breaks))
		}
		current.Breaks[index] = length
		return current, nil
	})
}

func (uc *timeSchemeUsecase) RemoveBreak(ctx context.Context, index int) (*responses.TimeScheme, error) {
	return uc.mutate(ctx, "timeSchemeUsecase.RemoveBreak", func(current models.TimeScheme) (models.TimeScheme, error) {
		if index < 0 || index >= len(current.Breaks) {
			return current, exceptions.ErrBreakIndexOutOfRange(index, len(current.Breaks))
		}
		current.Breaks = append(current.Breaks[:index], current.Breaks[index+1:]...)
		return current, nil
	})
}

func (uc *timeSchemeUsecase) FindPeriod(ctx context.Context, lessonNumber int) (*responses.Period, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSchemeUsecase.FindPeriod called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonNumberKey, lessonNumber),
	)

	boundaries, err := BoundariesOf(lessonNumber, uc.Current())
	if err != nil {
		uc.Log.Error("timeSchemeUsecase.FindPeriod error computing boundaries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := boundaries.ConvertIntoResponse()
	return &response, nil
}

func (uc *timeSchemeUsecase) FindDayGrid(ctx context.Context, day models.Weekday) (*responses.DayGrid, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timeSchemeUsecase.FindDayGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, day.String()),
	)

	slots, err := DayGrid(uc.Schedule.SpecificLessonsForDay(day), uc.Current())
	if err != nil {
		uc.Log.Error("timeSchemeUsecase.FindDayGrid error computing grid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := BuildDayGridResponse(day, slots, uc.Schedule)
	uc.Log.Info("timeSchemeUsecase.FindDayGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonCount, len(response.Periods)),
	)
	return &response, nil
}

// mutate validates the scheme produced by change, installs it and flushes it.
// A failed flush keeps the new scheme in memory and reports the error.
func (uc *timeSchemeUsecase) mutate(ctx context.Context, operation string, change func(models.TimeScheme) (models.TimeScheme, error)) (*responses.TimeScheme, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	updated, err := change(uc.Current())
	if err != nil {
		uc.Log.Error(operation+" rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	err = Validate(updated)
	if err != nil {
		uc.Log.Error(operation+" validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.set(updated)

	err = persistence.SaveJSON(ctx, uc.Gateway, constvars.PersistenceKeyTimeScheme, updated)
	if err != nil {
		uc.Log.Error(operation+" error persisting time scheme",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingTimeSchemeKey, updated),
	)
	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *timeSchemeUsecase) set(scheme models.TimeScheme) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.scheme = scheme.Clone()
}

// BuildDayGridResponse joins each slot with its lesson. Slots whose lesson is
// gone are still listed, without the lesson.
func BuildDayGridResponse(day models.Weekday, slots []models.PeriodSlot, schedule contracts.ScheduleReader) responses.DayGrid {
	grid := responses.DayGrid{
		Day:     day.String(),
		Periods: make([]responses.GridPeriod, 0, len(slots)),
	}
	for _, slot := range slots {
		period := responses.GridPeriod{
			Period:         slot.Boundaries.ConvertIntoResponse(),
			SpecificLesson: slot.Entry.ConvertIntoResponse(),
		}
		if lesson, ok := schedule.LessonByID(slot.Entry.LessonID); ok {
			lessonResponse := lesson.ConvertIntoResponse()
			period.Lesson = &lessonResponse
		}
		grid.Periods = append(grid.Periods, period)
	}
	return grid
}
