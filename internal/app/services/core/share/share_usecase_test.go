package share

import (
	"context"
	"errors"
	"net/http"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/schedule"
	"schoolbell-service/internal/app/services/core/timescheme"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type MockExportStorage struct {
	mock.Mock
}

func (m *MockExportStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, payload []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, payload)
	return args.String(0), args.Error(1)
}

func (m *MockExportStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

const sampleDocument = `{
  "lessons": [
    {"id": 0, "name": "Math", "teacher": "Ivanova"},
    {"id": 2, "name": "Physics", "teacher": "Petrov"}
  ],
  "specificLessons": [
    {"id": 0, "day": "MONDAY", "lessonNumber": 1, "lessonId": 0, "cabinet": "101", "additionalInfo": ""},
    {"id": 1, "day": "TUESDAY", "lessonNumber": 2, "lessonId": 2, "cabinet": "202", "additionalInfo": "lab"},
    {"id": 2, "day": "FRIDAY", "lessonNumber": 1, "lessonId": 5, "cabinet": "", "additionalInfo": ""}
  ],
  "timeScheme": {"start": "08:30", "lessonLength": 40, "breaks": [10, 20], "defaultBreak": 10, "coupleMiddleBreakLength": 5, "isPairMode": false}
}`

type fixture struct {
	usecase    *shareUsecase
	store      *schedule.Store
	timeScheme contracts.TimeSchemeUsecase
	gateway    contracts.PersistenceGateway
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gateway := persistence.NewMemoryGateway()
	store := schedule.NewStore()
	scheduleUsecase := schedule.NewScheduleUsecase(store, gateway, zap.NewNop())
	timeSchemeUsecase := timescheme.NewTimeSchemeUsecase(gateway, store, zap.NewNop())
	internalConfig := &config.InternalConfig{
		Persistence: config.AppPersistence{ImportLockTTLInSecond: 30},
		Minio:       config.AppMinio{ExportStorageEnabled: true, PreSignedUrlExpiryTimeInHour: 2},
	}
	driverConfig := &config.DriverConfig{}
	driverConfig.Minio.BucketName = "schoolbell"

	uc := NewShareUsecase(scheduleUsecase, store, timeSchemeUsecase, nil, nil, internalConfig, driverConfig, zap.NewNop()).(*shareUsecase)
	return fixture{usecase: uc, store: store, timeScheme: timeSchemeUsecase, gateway: gateway}
}

// failingSaveGateway fails every save of one collection.
type failingSaveGateway struct {
	contracts.PersistenceGateway
	failKey string
}

func (g failingSaveGateway) Save(ctx context.Context, key string, blob []byte) error {
	if strings.HasSuffix(key, g.failKey) {
		return exceptions.ErrPersistenceSave(errors.New("disk full"), key)
	}
	return g.PersistenceGateway.Save(ctx, key, blob)
}

func TestShareUsecase_ImportReplacesTimeSchemeBeforeCleanup(t *testing.T) {
	ctx := context.Background()
	gateway := failingSaveGateway{PersistenceGateway: persistence.NewMemoryGateway(), failKey: constvars.PersistenceKeyTimeScheme}
	store := schedule.NewStore()
	scheduleUsecase := schedule.NewScheduleUsecase(store, gateway, zap.NewNop())
	timeSchemeUsecase := timescheme.NewTimeSchemeUsecase(gateway, store, zap.NewNop())
	internalConfig := &config.InternalConfig{Persistence: config.AppPersistence{ImportLockTTLInSecond: 30}}
	uc := NewShareUsecase(scheduleUsecase, store, timeSchemeUsecase, nil, nil, internalConfig, &config.DriverConfig{}, zap.NewNop())

	_, err := uc.Import(ctx, []byte(sampleDocument))

	require.Error(t, err)
	assert.Len(t, store.Lessons(), 2)
	// the orphaned FRIDAY entry is still there: cleanup never ran
	assert.Len(t, store.SpecificLessons(), 3)
}

func TestShareUsecase_Import(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.ReplaceLessons([]models.Lesson{{ID: 9, Name: "Old", Homework: "keep?"}})

	result, err := f.usecase.Import(ctx, []byte(sampleDocument))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Lessons)
	assert.Equal(t, 2, result.SpecificLessons)
	assert.Equal(t, 1, result.RemovedInvalid)

	lessons := f.store.Lessons()
	require.Len(t, lessons, 2)
	for _, lesson := range lessons {
		assert.Empty(t, lesson.Homework)
	}
	assert.Len(t, f.store.SpecificLessons(), 2)

	scheme := f.timeScheme.Current()
	assert.Equal(t, models.NewClockTime(8, 30, 0), scheme.Start)
	assert.Equal(t, []int{10, 20}, scheme.Breaks)

	var stored models.TimeScheme
	found, err := persistence.LoadJSON(ctx, f.gateway, constvars.PersistenceKeyTimeScheme, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 40, stored.LessonLength)
}

func TestShareUsecase_ImportRejectsMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{"Not JSON", `{"lessons": [`, "$"},
		{"Root Array", `[]`, "$"},
		{"Missing Lessons", strings.Replace(sampleDocument, `"lessons"`, `"subjects"`, 1), "lessons"},
		{"Wrong Field Type", strings.Replace(sampleDocument, `"lessonNumber": 2`, `"lessonNumber": "2"`, 1), "specificLessons.1.lessonNumber"},
		{"Fractional Number", strings.Replace(sampleDocument, `"lessonLength": 40`, `"lessonLength": 40.5`, 1), "timeScheme.lessonLength"},
		{"Unknown Day", strings.Replace(sampleDocument, `"FRIDAY"`, `"FUNDAY"`, 1), "specificLessons.2.day"},
		{"Bad Start", strings.Replace(sampleDocument, `"08:30"`, `"8h30"`, 1), "timeScheme.start"},
		{"Bad Break Entry", strings.Replace(sampleDocument, `[10, 20]`, `[10, "x"]`, 1), "timeScheme.breaks.1"},
		{"Missing Pair Flag", strings.Replace(sampleDocument, `, "isPairMode": false`, ``, 1), "timeScheme.isPairMode"},
		{"Duplicate Lesson Id", strings.Replace(sampleDocument, `"id": 2, "name"`, `"id": 0, "name"`, 1), "lessons.1.id"},
		{"Taken Slot", strings.Replace(sampleDocument, `"TUESDAY", "lessonNumber": 2`, `"MONDAY", "lessonNumber": 1`, 1), "specificLessons.1.lessonNumber"},
		{"Lesson Number Above Limit", strings.Replace(sampleDocument, `"lessonNumber": 2`, `"lessonNumber": 1000000000000000`, 1), "specificLessons.1.lessonNumber"},
		{"Zero Lesson Length", strings.Replace(sampleDocument, `"lessonLength": 40`, `"lessonLength": 0`, 1), "timeScheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.store.ReplaceLessons([]models.Lesson{{ID: 0, Name: "Existing"}})

			_, err := f.usecase.Import(ctx, []byte(tt.payload))

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.True(t, strings.HasSuffix(customErr.ClientMessage, ": "+tt.path), customErr.ClientMessage)

			lessons := f.store.Lessons()
			require.Len(t, lessons, 1)
			assert.Equal(t, "Existing", lessons[0].Name)
			assert.Equal(t, models.DefaultTimeScheme(), f.timeScheme.Current())
		})
	}
}

func TestShareUsecase_ExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newFixture(t)
	source.store.ReplaceLessons([]models.Lesson{
		{ID: 1, Name: "Physics", Teacher: "Petrov", Homework: "p. 12"},
		{ID: 0, Name: "Math", Teacher: "Ivanova"},
	})
	source.store.ReplaceSpecificLessons([]models.SpecificLesson{
		{ID: 0, Day: models.Wednesday, LessonNumber: 3, LessonID: 1, Cabinet: "12", AdditionalInfo: "bring calculator"},
	})

	payload, err := source.usecase.Export(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(payload), "{\n  \""), "export is indented with two spaces")
	assert.False(t, gjson.GetBytes(payload, "lessons.0.homework").Exists())
	assert.Equal(t, "WEDNESDAY", gjson.GetBytes(payload, "specificLessons.0.day").String())
	assert.Equal(t, "09:00:00", gjson.GetBytes(payload, "timeScheme.start").String())

	target := newFixture(t)
	_, err = target.usecase.Import(ctx, payload)
	require.NoError(t, err)

	imported := target.store.Lessons()
	require.Len(t, imported, 2)
	assert.Equal(t, models.Lesson{ID: 0, Name: "Math", Teacher: "Ivanova"}, imported[0])
	assert.Equal(t, models.Lesson{ID: 1, Name: "Physics", Teacher: "Petrov"}, imported[1])
	assert.Equal(t, source.store.SpecificLessons(), target.store.SpecificLessons())
	assert.Equal(t, source.timeScheme.Current(), target.timeScheme.Current())
}

func TestShareUsecase_ImportFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong Extension", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.ImportFile(ctx, "schedule.json", []byte(sampleDocument))

		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Empty(t, f.store.Lessons())
	})

	t.Run("Extension Is Case Insensitive", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.ImportFile(ctx, "Class 7B.SCHOE", []byte(sampleDocument))

		require.NoError(t, err)
		assert.Len(t, f.store.Lessons(), 2)
	})
}

func TestShareUsecase_ImportLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Held Elsewhere", func(t *testing.T) {
		f := newFixture(t)
		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyImportLock, 30*time.Second).Return(false, "", nil)
		f.usecase.Locker = locker

		_, err := f.usecase.Import(ctx, []byte(sampleDocument))

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Empty(t, f.store.Lessons())
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Released After Import", func(t *testing.T) {
		f := newFixture(t)
		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyImportLock, 30*time.Second).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyImportLock, "token").Return(nil).Once()
		f.usecase.Locker = locker

		_, err := f.usecase.Import(ctx, []byte(sampleDocument))

		require.NoError(t, err)
		locker.AssertExpectations(t)
	})
}

func TestShareUsecase_ExportArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.usecase.ExportArchive(ctx, &requests.ExportArchive{Name: "week"})

		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})

	t.Run("Uploads And Presigns", func(t *testing.T) {
		f := newFixture(t)
		storage := new(MockExportStorage)
		storage.On("UploadObject", mock.Anything, "schoolbell", "exports/week.schoe", constvars.MIMEOctetStream, mock.Anything).Return("exports/week.schoe", nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "schoolbell", "exports/week.schoe", 2*time.Hour).Return("https://minio.local/exports/week.schoe?sig=1", nil)
		f.usecase.Storage = storage
		now := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
		f.usecase.Clock = func() time.Time { return now }

		archive, err := f.usecase.ExportArchive(ctx, &requests.ExportArchive{Name: "../../week"})

		require.NoError(t, err)
		assert.Equal(t, "week.schoe", archive.FileName)
		assert.Equal(t, "exports/week.schoe", archive.ObjectName)
		assert.Equal(t, "https://minio.local/exports/week.schoe?sig=1", archive.URL)
		assert.Equal(t, now.Add(2*time.Hour), archive.ExpiresAt)
		storage.AssertExpectations(t)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		f := newFixture(t)
		storage := new(MockExportStorage)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", exceptions.ErrMinioCreateObject(errors.New("no such bucket"), "schoolbell"))
		f.usecase.Storage = storage

		_, err := f.usecase.ExportArchive(ctx, &requests.ExportArchive{})

		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
