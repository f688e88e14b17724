package livestatus

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/timescheme"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type liveStatusUsecase struct {
	Clock      func() time.Time
	Schedule   contracts.ScheduleReader
	TimeScheme contracts.TimeSchemeUsecase
	Log        *zap.Logger
}

func NewLiveStatusUsecase(
	schedule contracts.ScheduleReader,
	timeScheme contracts.TimeSchemeUsecase,
	logger *zap.Logger,
) contracts.LiveStatusUsecase {
	return &liveStatusUsecase{
		Clock:      time.Now,
		Schedule:   schedule,
		TimeScheme: timeScheme,
		Log:        logger,
	}
}

func (uc *liveStatusUsecase) CurrentStatus(ctx context.Context) (models.Status, error) {
	now := uc.Clock()
	today := models.WeekdayOf(now)
	return Evaluate(models.ClockTimeOf(now), uc.Schedule.SpecificLessonsForDay(today), uc.TimeScheme.Current())
}

func (uc *liveStatusUsecase) GetStatus(ctx context.Context) (*responses.Status, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("liveStatusUsecase.GetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.Clock()
	response, err := uc.statusAt(now)
	if err != nil {
		uc.Log.Error("liveStatusUsecase.GetStatus error evaluating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("liveStatusUsecase.GetStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKindKey, response.Kind),
		zap.Int(constvars.LoggingCountdownKey, response.CountdownSeconds),
	)
	return &response, nil
}

// GetOverview shows today's grid while periods remain and tomorrow's once
// the day is resting.
func (uc *liveStatusUsecase) GetOverview(ctx context.Context) (*responses.Overview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("liveStatusUsecase.GetOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.Clock()
	status, err := uc.statusAt(now)
	if err != nil {
		uc.Log.Error("liveStatusUsecase.GetOverview error evaluating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	displayDay := models.WeekdayOf(now)
	isTomorrow := status.Kind == string(models.StatusResting)
	if isTomorrow {
		displayDay = displayDay.Plus(1)
	}

	scheme := uc.TimeScheme.Current()
	slots, err := timescheme.DayGrid(uc.Schedule.SpecificLessonsForDay(displayDay), scheme)
	if err != nil {
		uc.Log.Error("liveStatusUsecase.GetOverview error computing grid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	overview := &responses.Overview{
		Status:      status,
		DisplayDay:  displayDay.String(),
		IsTomorrow:  isTomorrow,
		Grid:        timescheme.BuildDayGridResponse(displayDay, slots, uc.Schedule),
		HomeworkDue: uc.homeworkDueAt(now, scheme),
	}

	uc.Log.Info("liveStatusUsecase.GetOverview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, overview.DisplayDay),
		zap.Int(constvars.LoggingHomeworkDueCountKey, len(overview.HomeworkDue)),
	)
	return overview, nil
}

func (uc *liveStatusUsecase) FindHomeworkDue(ctx context.Context) ([]responses.HomeworkDue, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("liveStatusUsecase.FindHomeworkDue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := uc.homeworkDueAt(uc.Clock(), uc.TimeScheme.Current())

	uc.Log.Info("liveStatusUsecase.FindHomeworkDue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHomeworkDueCountKey, len(response)),
	)
	return response, nil
}

func (uc *liveStatusUsecase) statusAt(now time.Time) (responses.Status, error) {
	today := models.WeekdayOf(now)
	clock := models.ClockTimeOf(now)

	status, err := Evaluate(clock, uc.Schedule.SpecificLessonsForDay(today), uc.TimeScheme.Current())
	if err != nil {
		return responses.Status{}, err
	}
	return BuildStatusResponse(status, today, clock, uc.Schedule), nil
}

func (uc *liveStatusUsecase) homeworkDueAt(now time.Time, scheme models.TimeScheme) []responses.HomeworkDue {
	due := DueList(uc.Schedule.Lessons(), models.WeekdayOf(now), models.ClockTimeOf(now), uc.Schedule.SpecificLessons(), scheme)
	response := make([]responses.HomeworkDue, 0, len(due))
	for _, item := range due {
		response = append(response, item.ConvertIntoResponse())
	}
	return response
}

func BuildStatusResponse(status models.Status, day models.Weekday, now models.ClockTime, schedule contracts.ScheduleReader) responses.Status {
	response := responses.Status{
		Kind:             string(status.Kind),
		CountdownSeconds: status.CountdownSeconds,
		Countdown:        FormatCountdown(status.CountdownSeconds),
		Now:              now.String(),
		Day:              day.String(),
	}
	if status.Entry != nil {
		entry := status.Entry.ConvertIntoResponse()
		response.SpecificLesson = &entry
		if lesson, ok := schedule.LessonByID(status.Entry.LessonID); ok {
			lessonResponse := lesson.ConvertIntoResponse()
			response.Lesson = &lessonResponse
		}
	}
	return response
}
