package timescheme

import (
	"context"
	"errors"
	"net/http"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPersistenceGateway struct {
	mock.Mock
}

func (m *MockPersistenceGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Bool(1), args.Error(2)
}

func (m *MockPersistenceGateway) Save(ctx context.Context, key string, blob []byte) error {
	return m.Called(ctx, key, blob).Error(0)
}

type fakeSchedule struct {
	lessons         []models.Lesson
	specificLessons []models.SpecificLesson
}

func (f *fakeSchedule) Lessons() []models.Lesson { return f.lessons }

func (f *fakeSchedule) LessonByID(lessonID int) (models.Lesson, bool) {
	for _, lesson := range f.lessons {
		if lesson.ID == lessonID {
			return lesson, true
		}
	}
	return models.Lesson{}, false
}

func (f *fakeSchedule) SpecificLessons() []models.SpecificLesson { return f.specificLessons }

func (f *fakeSchedule) SpecificLessonsForDay(day models.Weekday) []models.SpecificLesson {
	var result []models.SpecificLesson
	for _, entry := range f.specificLessons {
		if entry.Day == day {
			result = append(result, entry)
		}
	}
	return result
}

func intPtr(value int) *int { return &value }

func stringPtr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }

func TestTimeSchemeUsecase_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Blob Uses Default", func(t *testing.T) {
		uc := NewTimeSchemeUsecase(persistence.NewMemoryGateway(), &fakeSchedule{}, zap.NewNop())

		require.NoError(t, uc.Load(ctx))
		assert.Equal(t, models.DefaultTimeScheme(), uc.Current())
	})

	t.Run("Stored Scheme Is Restored", func(t *testing.T) {
		gateway := persistence.NewMemoryGateway()
		stored := models.TimeScheme{Start: models.NewClockTime(8, 30, 0), LessonLength: 40, Breaks: []int{10}, DefaultBreak: 5, CoupleMiddleBreakLength: 0, IsPairMode: true}
		require.NoError(t, persistence.SaveJSON(ctx, gateway, constvars.PersistenceKeyTimeScheme, stored))

		uc := NewTimeSchemeUsecase(gateway, &fakeSchedule{}, zap.NewNop())

		require.NoError(t, uc.Load(ctx))
		assert.Equal(t, stored, uc.Current())
	})

	t.Run("Load Failure Falls Back To Default", func(t *testing.T) {
		gateway := new(MockPersistenceGateway)
		gateway.On("Load", ctx, constvars.PersistenceKeyTimeScheme).Return(nil, false, errors.New("disk on fire"))

		uc := NewTimeSchemeUsecase(gateway, &fakeSchedule{}, zap.NewNop())

		err := uc.Load(ctx)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		assert.Equal(t, models.DefaultTimeScheme(), uc.Current())
	})
}

func TestTimeSchemeUsecase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial Update Is Persisted", func(t *testing.T) {
		gateway := persistence.NewMemoryGateway()
		uc := NewTimeSchemeUsecase(gateway, &fakeSchedule{}, zap.NewNop())

		result, err := uc.Update(ctx, &requests.UpdateTimeScheme{
			Start:        stringPtr("08:00"),
			LessonLength: intPtr(40),
			IsPairMode:   boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, "08:00:00", result.Start)
		assert.Equal(t, 40, result.LessonLength)
		assert.True(t, result.IsPairMode)
		assert.Equal(t, 15, result.DefaultBreak)

		var stored models.TimeScheme
		found, err := persistence.LoadJSON(ctx, gateway, constvars.PersistenceKeyTimeScheme, &stored)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uc.Current(), stored)
	})

	t.Run("Non Positive Values Are Rejected", func(t *testing.T) {
		gateway := new(MockPersistenceGateway)
		uc := NewTimeSchemeUsecase(gateway, &fakeSchedule{}, zap.NewNop())

		_, err := uc.Update(ctx, &requests.UpdateTimeScheme{LessonLength: intPtr(0)})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))

		_, err = uc.Update(ctx, &requests.UpdateTimeScheme{Breaks: []int{10, -5}})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))

		_, err = uc.Update(ctx, &requests.UpdateTimeScheme{Start: stringPtr("25:99")})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))

		assert.Equal(t, models.DefaultTimeScheme(), uc.Current())
		gateway.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Persistence Failure Is Surfaced", func(t *testing.T) {
		gateway := new(MockPersistenceGateway)
		gateway.On("Save", ctx, constvars.PersistenceKeyTimeScheme, mock.Anything).Return(errors.New("read-only"))
		uc := NewTimeSchemeUsecase(gateway, &fakeSchedule{}, zap.NewNop())

		_, err := uc.Update(ctx, &requests.UpdateTimeScheme{DefaultBreak: intPtr(20)})

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
	})
}

func TestTimeSchemeUsecase_Breaks(t *testing.T) {
	ctx := context.Background()
	uc := NewTimeSchemeUsecase(persistence.NewMemoryGateway(), &fakeSchedule{}, zap.NewNop())

	_, err := uc.Update(ctx, &requests.UpdateTimeScheme{Breaks: []int{10, 20}})
	require.NoError(t, err)

	result, err := uc.AddBreak(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, result.Breaks)

	result, err = uc.UpdateBreak(ctx, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 20, 30}, result.Breaks)

	result, err = uc.RemoveBreak(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 30}, result.Breaks)

	_, err = uc.RemoveBreak(ctx, 2)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = uc.UpdateBreak(ctx, -1, 5)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = uc.AddBreak(ctx, 0)
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))

	assert.Equal(t, []int{5, 30}, uc.Current().Breaks)
}

func TestTimeSchemeUsecase_Reset(t *testing.T) {
	ctx := context.Background()
	uc := NewTimeSchemeUsecase(persistence.NewMemoryGateway(), &fakeSchedule{}, zap.NewNop())

	_, err := uc.Update(ctx, &requests.UpdateTimeScheme{LessonLength: intPtr(90), IsPairMode: boolPtr(true)})
	require.NoError(t, err)

	result, err := uc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, result.LessonLength)
	assert.False(t, result.IsPairMode)
	assert.Equal(t, models.DefaultTimeScheme(), uc.Current())
}

func TestTimeSchemeUsecase_FindDayGrid(t *testing.T) {
	ctx := context.Background()
	schedule := &fakeSchedule{
		lessons: []models.Lesson{{ID: 0, Name: "Math", Teacher: "Ivanova"}},
		specificLessons: []models.SpecificLesson{
			{ID: 0, Day: models.Monday, LessonNumber: 2, LessonID: 0, Cabinet: "101"},
			{ID: 1, Day: models.Monday, LessonNumber: 1, LessonID: 7},
			{ID: 2, Day: models.Tuesday, LessonNumber: 1, LessonID: 0},
		},
	}
	uc := NewTimeSchemeUsecase(persistence.NewMemoryGateway(), schedule, zap.NewNop())

	grid, err := uc.FindDayGrid(ctx, models.Monday)

	require.NoError(t, err)
	assert.Equal(t, "MONDAY", grid.Day)
	require.Len(t, grid.Periods, 2)
	assert.Equal(t, "09:00:00", grid.Periods[0].Start)
	assert.Nil(t, grid.Periods[0].Lesson)
	assert.Equal(t, "10:00:00", grid.Periods[1].Start)
	require.NotNil(t, grid.Periods[1].Lesson)
	assert.Equal(t, "Math", grid.Periods[1].Lesson.Name)
	assert.Equal(t, "101", grid.Periods[1].SpecificLesson.Cabinet)
}

func TestTimeSchemeUsecase_FindPeriod(t *testing.T) {
	ctx := context.Background()
	uc := NewTimeSchemeUsecase(persistence.NewMemoryGateway(), &fakeSchedule{}, zap.NewNop())

	period, err := uc.FindPeriod(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "11:00:00", period.Start)
	assert.Equal(t, "11:45:00", period.End)

	_, err = uc.FindPeriod(ctx, 0)
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))

	_, err = uc.FindPeriod(ctx, constvars.MaxLessonNumber+1)
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
}
