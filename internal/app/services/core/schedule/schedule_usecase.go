package schedule

import (
	"context"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
	"schoolbell-service/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	// writeMu is held across every mutate-and-persist sequence.
	writeMu sync.Mutex

	Store   *Store
	Gateway contracts.PersistenceGateway
	Log     *zap.Logger
}

func NewScheduleUsecase(
	store *Store,
	gateway contracts.PersistenceGateway,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		Store:   store,
		Gateway: gateway,
		Log:     logger,
	}
}

// Load fills the store from the gateway, then drops entries pointing at
// missing lessons. A collection that fails to load stays empty; the first
// such error is returned after the rest has been loaded.
func (uc *scheduleUsecase) Load(ctx context.Context) error {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	var firstErr error

	var lessons []models.Lesson
	_, err := persistence.LoadJSON(ctx, uc.Gateway, constvars.PersistenceKeyLessons, &lessons)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Load error loading lessons",
			zap.String(constvars.LoggingPersistenceKey, constvars.PersistenceKeyLessons),
			zap.Error(err),
		)
		lessons = nil
		firstErr = err
	}
	uc.Store.ReplaceLessons(lessons)

	var specificLessons []models.SpecificLesson
	_, err = persistence.LoadJSON(ctx, uc.Gateway, constvars.PersistenceKeySpecificLessons, &specificLessons)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Load error loading specific lessons",
			zap.String(constvars.LoggingPersistenceKey, constvars.PersistenceKeySpecificLessons),
			zap.Error(err),
		)
		specificLessons = nil
		if firstErr == nil {
			firstErr = err
		}
	}
	uc.Store.ReplaceSpecificLessons(specificLessons)

	removed := uc.Store.CleanInvalid()
	if removed > 0 {
		uc.Log.Info("scheduleUsecase.Load removed dangling specific lessons",
			zap.Int(constvars.LoggingRemovedCountKey, removed),
		)
		err = uc.persistSpecificLessons(ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	uc.Log.Info("scheduleUsecase.Load finished",
		zap.Int(constvars.LoggingLessonCountKey, len(uc.Store.Lessons())),
		zap.Int(constvars.LoggingSpecificLessonCount, len(uc.Store.SpecificLessons())),
	)
	return firstErr
}

func (uc *scheduleUsecase) FindAllLessons(ctx context.Context) ([]responses.Lesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.FindAllLessons called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lessons := uc.Store.Lessons()
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].ID < lessons[j].ID })

	response := make([]responses.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		response = append(response, lesson.ConvertIntoResponse())
	}
	return response, nil
}

func (uc *scheduleUsecase) FindLessonByID(ctx context.Context, lessonID int) (*responses.Lesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.FindLessonByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)

	lesson, found := uc.Store.LessonByID(lessonID)
	if !found {
		return nil, exceptions.ErrLessonNotFound(lessonID)
	}
	response := lesson.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) CreateLesson(ctx context.Context, request *requests.CreateLesson) (*responses.Lesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateLesson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if strings.TrimSpace(request.Name) == "" {
		return nil, errBlankName()
	}

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	lesson := uc.Store.AddLesson(models.Lesson{
		Name:    request.Name,
		Teacher: request.Teacher,
	})

	err := uc.persistLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateLesson error persisting lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateLesson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lesson.ID),
	)
	response := lesson.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) UpdateLesson(ctx context.Context, lessonID int, request *requests.UpdateLesson) (*responses.Lesson, error) {
	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return nil, errBlankName()
	}
	return uc.updateLesson(ctx, "scheduleUsecase.UpdateLesson", lessonID, models.LessonPatch{
		Name:    request.Name,
		Teacher: request.Teacher,
	})
}

// UpdateHomework sets the homework note; an empty string clears it.
func (uc *scheduleUsecase) UpdateHomework(ctx context.Context, lessonID int, request *requests.UpdateHomework) (*responses.Lesson, error) {
	homework := request.Homework
	return uc.updateLesson(ctx, "scheduleUsecase.UpdateHomework", lessonID, models.LessonPatch{
		Homework: &homework,
	})
}

func (uc *scheduleUsecase) updateLesson(ctx context.Context, operation string, lessonID int, patch models.LessonPatch) (*responses.Lesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	lesson, found := uc.Store.UpdateLesson(lessonID, patch)
	if !found {
		uc.Log.Error(operation+" lesson not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingLessonIDKey, lessonID),
		)
		return nil, exceptions.ErrLessonNotFound(lessonID)
	}

	err := uc.persistLessons(ctx)
	if err != nil {
		uc.Log.Error(operation+" error persisting lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)
	response := lesson.ConvertIntoResponse()
	return &response, nil
}

// DeleteLesson removes the lesson and every timetable entry that pointed at it.
func (uc *scheduleUsecase) DeleteLesson(ctx context.Context, lessonID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteLesson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	if !uc.Store.DeleteLesson(lessonID) {
		uc.Log.Error("scheduleUsecase.DeleteLesson lesson not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingLessonIDKey, lessonID),
		)
		return exceptions.ErrLessonNotFound(lessonID)
	}
	removed := uc.Store.CleanInvalid()

	err := uc.persistLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.DeleteLesson error persisting lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if removed > 0 {
		err = uc.persistSpecificLessons(ctx)
		if err != nil {
			uc.Log.Error("scheduleUsecase.DeleteLesson error persisting specific lessons",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}

	uc.Log.Info("scheduleUsecase.DeleteLesson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonIDKey, lessonID),
		zap.Int(constvars.LoggingRemovedCountKey, removed),
	)
	return nil
}

// FindSpecificLessons lists the whole timetable ordered by day and lesson
// number, or one day of it when day is set.
func (uc *scheduleUsecase) FindSpecificLessons(ctx context.Context, day *models.Weekday) ([]responses.SpecificLesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.FindSpecificLessons called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var entries []models.SpecificLesson
	if day != nil {
		entries = uc.Store.SpecificLessonsForDay(*day)
	} else {
		entries = uc.Store.SpecificLessons()
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Day != entries[j].Day {
				return entries[i].Day < entries[j].Day
			}
			return entries[i].LessonNumber < entries[j].LessonNumber
		})
	}

	response := make([]responses.SpecificLesson, 0, len(entries))
	for _, entry := range entries {
		response = append(response, entry.ConvertIntoResponse())
	}

	uc.Log.Info("scheduleUsecase.FindSpecificLessons succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonCount, len(response)),
	)
	return response, nil
}

func (uc *scheduleUsecase) CreateSpecificLesson(ctx context.Context, request *requests.CreateSpecificLesson) (*responses.SpecificLesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateSpecificLesson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	day, err := models.ParseWeekday(request.Day)
	if err != nil {
		return nil, exceptions.ErrInvalidDay(err, request.Day)
	}
	if request.LessonID == nil {
		return nil, exceptions.ErrUnknownLesson(-1)
	}
	candidate := models.SpecificLesson{
		Day:            day,
		LessonNumber:   request.LessonNumber,
		LessonID:       *request.LessonID,
		Cabinet:        request.Cabinet,
		AdditionalInfo: request.AdditionalInfo,
	}

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	err = uc.checkSpecificLesson(candidate, -1)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSpecificLesson rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entry := uc.Store.AddSpecificLesson(candidate)

	err = uc.persistSpecificLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSpecificLesson error persisting specific lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateSpecificLesson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, entry.ID),
		zap.String(constvars.LoggingDayKey, entry.Day.String()),
		zap.Int(constvars.LoggingLessonNumberKey, entry.LessonNumber),
	)
	response := entry.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) UpdateSpecificLesson(ctx context.Context, specificLessonID int, request *requests.UpdateSpecificLesson) (*responses.SpecificLesson, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateSpecificLesson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
	)

	patch := models.SpecificLessonPatch{
		LessonNumber:   request.LessonNumber,
		LessonID:       request.LessonID,
		Cabinet:        request.Cabinet,
		AdditionalInfo: request.AdditionalInfo,
	}
	if request.Day != nil {
		day, err := models.ParseWeekday(*request.Day)
		if err != nil {
			return nil, exceptions.ErrInvalidDay(err, *request.Day)
		}
		patch.Day = &day
	}

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	current, found := uc.Store.SpecificLessonByID(specificLessonID)
	if !found {
		uc.Log.Error("scheduleUsecase.UpdateSpecificLesson specific lesson not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
		)
		return nil, exceptions.ErrSpecificLessonNotFound(specificLessonID)
	}
	current.Apply(patch)

	err := uc.checkSpecificLesson(current, specificLessonID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.UpdateSpecificLesson rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	entry, _ := uc.Store.UpdateSpecificLesson(specificLessonID, patch)

	err = uc.persistSpecificLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.UpdateSpecificLesson error persisting specific lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.UpdateSpecificLesson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
	)
	response := entry.ConvertIntoResponse()
	return &response, nil
}

func (uc *scheduleUsecase) DeleteSpecificLesson(ctx context.Context, specificLessonID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteSpecificLesson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	if !uc.Store.DeleteSpecificLesson(specificLessonID) {
		uc.Log.Error("scheduleUsecase.DeleteSpecificLesson specific lesson not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
		)
		return exceptions.ErrSpecificLessonNotFound(specificLessonID)
	}

	err := uc.persistSpecificLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.DeleteSpecificLesson error persisting specific lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("scheduleUsecase.DeleteSpecificLesson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonIDKey, specificLessonID),
	)
	return nil
}

// ReplaceLessons swaps the whole lesson collection and flushes it. Entries
// are not reconciled here; callers run CleanInvalid when they are done.
func (uc *scheduleUsecase) ReplaceLessons(ctx context.Context, lessons []models.Lesson) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ReplaceLessons called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingLessonCountKey, len(lessons)),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	uc.Store.ReplaceLessons(lessons)
	err := uc.persistLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ReplaceLessons error persisting lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *scheduleUsecase) ReplaceSpecificLessons(ctx context.Context, specificLessons []models.SpecificLesson) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ReplaceSpecificLessons called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSpecificLessonCount, len(specificLessons)),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	uc.Store.ReplaceSpecificLessons(specificLessons)
	err := uc.persistSpecificLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.ReplaceSpecificLessons error persisting specific lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *scheduleUsecase) CleanInvalid(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CleanInvalid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	removed := uc.Store.CleanInvalid()
	err := uc.persistSpecificLessons(ctx)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CleanInvalid error persisting specific lessons",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return removed, err
	}

	uc.Log.Info("scheduleUsecase.CleanInvalid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRemovedCountKey, removed),
	)
	return removed, nil
}

// checkSpecificLesson rejects an entry with a bad number, a missing lesson or
// a slot already held by another entry. selfID is ignored in the slot check.
func (uc *scheduleUsecase) checkSpecificLesson(entry models.SpecificLesson, selfID int) error {
	if entry.LessonNumber < 1 || entry.LessonNumber > constvars.MaxLessonNumber {
		return exceptions.ErrInvalidLessonNumber(entry.LessonNumber)
	}
	if !entry.Day.IsValid() {
		return exceptions.ErrInvalidDay(nil, entry.Day.String())
	}
	if _, ok := uc.Store.LessonByID(entry.LessonID); !ok {
		return exceptions.ErrUnknownLesson(entry.LessonID)
	}
	occupant, taken := uc.Store.SpecificLessonAt(entry.Day, entry.LessonNumber)
	if taken && occupant.ID != selfID {
		return exceptions.ErrDuplicateSlot(entry.Day.String(), entry.LessonNumber, occupant.ID)
	}
	return nil
}

func (uc *scheduleUsecase) persistLessons(ctx context.Context) error {
	return persistence.SaveJSON(ctx, uc.Gateway, constvars.PersistenceKeyLessons, uc.Store.Lessons())
}

func (uc *scheduleUsecase) persistSpecificLessons(ctx context.Context) error {
	return persistence.SaveJSON(ctx, uc.Gateway, constvars.PersistenceKeySpecificLessons, uc.Store.SpecificLessons())
}

func errBlankName() *exceptions.CustomError {
	return exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, "name "+constvars.CustomValidationErrorMessages["required"], constvars.ErrDevInvalidInput)
}
