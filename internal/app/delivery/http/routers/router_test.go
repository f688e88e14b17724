package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/schedule"
	"schoolbell-service/internal/app/services/core/timescheme"
	"schoolbell-service/internal/app/services/shared/persistence"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
	"schoolbell-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockLiveStatusUsecase struct {
	mock.Mock
}

func (m *MockLiveStatusUsecase) CurrentStatus(ctx context.Context) (models.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Status), args.Error(1)
}

func (m *MockLiveStatusUsecase) GetStatus(ctx context.Context) (*responses.Status, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Status)
	return result, args.Error(1)
}

func (m *MockLiveStatusUsecase) GetOverview(ctx context.Context) (*responses.Overview, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Overview)
	return result, args.Error(1)
}

func (m *MockLiveStatusUsecase) FindHomeworkDue(ctx context.Context) ([]responses.HomeworkDue, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.HomeworkDue)
	return result, args.Error(1)
}

type MockShareUsecase struct {
	mock.Mock
}

func (m *MockShareUsecase) Export(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]byte)
	return result, args.Error(1)
}

func (m *MockShareUsecase) Import(ctx context.Context, payload []byte) (*responses.ImportResult, error) {
	args := m.Called(ctx, payload)
	result, _ := args.Get(0).(*responses.ImportResult)
	return result, args.Error(1)
}

func (m *MockShareUsecase) ImportFile(ctx context.Context, fileName string, payload []byte) (*responses.ImportResult, error) {
	args := m.Called(ctx, fileName, payload)
	result, _ := args.Get(0).(*responses.ImportResult)
	return result, args.Error(1)
}

func (m *MockShareUsecase) ExportArchive(ctx context.Context, request *requests.ExportArchive) (*responses.ExportArchive, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.ExportArchive)
	return result, args.Error(1)
}

const testAPIKey = "test-schoolbell-api-key-12345"

type testServer struct {
	router     *chi.Mux
	liveStatus *MockLiveStatusUsecase
	share      *MockShareUsecase
}

func newTestServer(t *testing.T, apiKey string) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			APIKey:                     apiKey,
			AllowedOrigins:             "*",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	gateway := persistence.NewMemoryGateway()
	store := schedule.NewStore()
	scheduleUsecase := schedule.NewScheduleUsecase(store, gateway, logger)
	timeSchemeUsecase := timescheme.NewTimeSchemeUsecase(gateway, store, logger)
	liveStatus := new(MockLiveStatusUsecase)
	share := new(MockShareUsecase)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		&middlewares.Middlewares{Log: logger, InternalConfig: internalConfig},
		&controllers.LessonController{Log: logger, ScheduleUsecase: scheduleUsecase},
		&controllers.SpecificLessonController{Log: logger, ScheduleUsecase: scheduleUsecase},
		&controllers.TimeSchemeController{
			Log:               logger,
			TimeSchemeUsecase: timeSchemeUsecase,
			// 2024-01-01 is a Monday.
			Clock: func() time.Time { return time.Date(2024, time.January, 1, 8, 0, 0, 0, time.Local) },
		},
		&controllers.LiveStatusController{Log: logger, LiveStatusUsecase: liveStatus},
		&controllers.ShareController{Log: logger, ShareUsecase: share},
	)

	return &testServer{router: router, liveStatus: liveStatus, share: share}
}

func (s *testServer) do(method, path string, body interface{}, apiKey string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		payload, _ := json.Marshal(v)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if apiKey != "" {
		req.Header.Set(constvars.HeaderAPIKey, apiKey)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.True(t, body.Success, rr.Body.String())
	require.NoError(t, json.Unmarshal(body.Data, target))
}

func TestLessonRoutes(t *testing.T) {
	server := newTestServer(t, testAPIKey)

	t.Run("create requires api key", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/lessons", map[string]string{"name": "Math"}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("create, read, update, homework, delete", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/lessons", map[string]string{"name": "Math", "teacher": "Ivanova"}, testAPIKey)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var created responses.Lesson
		decodeData(t, rr, &created)
		assert.Equal(t, 0, created.ID)
		assert.Equal(t, "Math", created.Name)

		rr = server.do("GET", "/api/v1/lessons/0", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)

		rr = server.do("PUT", "/api/v1/lessons/0", map[string]string{"teacher": "Petrova"}, testAPIKey)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var updated responses.Lesson
		decodeData(t, rr, &updated)
		assert.Equal(t, "Math", updated.Name)
		assert.Equal(t, "Petrova", updated.Teacher)

		rr = server.do("PUT", "/api/v1/lessons/0/homework", map[string]string{"homework": "ex. 5"}, testAPIKey)
		require.Equal(t, http.StatusOK, rr.Code)
		decodeData(t, rr, &updated)
		assert.Equal(t, "ex. 5", updated.Homework)

		rr = server.do("GET", "/api/v1/lessons", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var all []responses.Lesson
		decodeData(t, rr, &all)
		assert.Len(t, all, 1)

		rr = server.do("DELETE", "/api/v1/lessons/0", nil, testAPIKey)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = server.do("DELETE", "/api/v1/lessons/0", nil, testAPIKey)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/lessons", map[string]string{"name": ""}, testAPIKey)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/lessons", "{", testAPIKey)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid id param", func(t *testing.T) {
		rr := server.do("GET", "/api/v1/lessons/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = server.do("GET", "/api/v1/lessons/-1", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		rr := server.do("GET", "/api/v1/lessons/42", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSpecificLessonRoutes(t *testing.T) {
	server := newTestServer(t, "")

	rr := server.do("POST", "/api/v1/lessons", map[string]string{"name": "Math"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	lessonID := 0
	entry := map[string]interface{}{
		"day":          "MONDAY",
		"lessonNumber": 1,
		"lessonId":     lessonID,
		"cabinet":      "101",
	}

	rr = server.do("POST", "/api/v1/specific-lessons", entry, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = server.do("POST", "/api/v1/specific-lessons", entry, "")
	assert.Equal(t, http.StatusConflict, rr.Code, "same day and lesson number is taken")

	entry["lessonNumber"] = 2
	entry["lessonId"] = 7
	rr = server.do("POST", "/api/v1/specific-lessons", entry, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code, "lesson must exist")

	entry["lessonId"] = lessonID
	entry["day"] = "FUNDAY"
	rr = server.do("POST", "/api/v1/specific-lessons", entry, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do("PUT", "/api/v1/specific-lessons/0", map[string]interface{}{"cabinet": "305"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var updated responses.SpecificLesson
	decodeData(t, rr, &updated)
	assert.Equal(t, "305", updated.Cabinet)
	assert.Equal(t, 1, updated.LessonNumber)

	rr = server.do("GET", "/api/v1/specific-lessons?day=monday", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var monday []responses.SpecificLesson
	decodeData(t, rr, &monday)
	assert.Len(t, monday, 1)

	rr = server.do("GET", "/api/v1/specific-lessons?day=tuesday", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var tuesday []responses.SpecificLesson
	decodeData(t, rr, &tuesday)
	assert.Empty(t, tuesday)

	rr = server.do("GET", "/api/v1/specific-lessons?day=someday", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do("DELETE", "/api/v1/specific-lessons/0", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = server.do("DELETE", "/api/v1/specific-lessons/0", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTimeSchemeRoutes(t *testing.T) {
	server := newTestServer(t, "")

	rr := server.do("GET", "/api/v1/time-scheme", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var scheme responses.TimeScheme
	decodeData(t, rr, &scheme)
	assert.Equal(t, "09:00:00", scheme.Start)
	assert.Equal(t, 45, scheme.LessonLength)

	rr = server.do("GET", "/api/v1/time-scheme/periods/2", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var period responses.Period
	decodeData(t, rr, &period)
	assert.Equal(t, "10:00:00", period.Start)
	assert.Equal(t, "10:45:00", period.End)

	rr = server.do("GET", "/api/v1/time-scheme/periods/0", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do("PUT", "/api/v1/time-scheme", map[string]interface{}{"lessonLength": 0}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do("PUT", "/api/v1/time-scheme", map[string]interface{}{"start": "08:30", "isPairMode": true}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	decodeData(t, rr, &scheme)
	assert.Equal(t, "08:30:00", scheme.Start)
	assert.True(t, scheme.IsPairMode)

	rr = server.do("POST", "/api/v1/time-scheme/breaks", map[string]int{"length": 20}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &scheme)
	assert.Len(t, scheme.Breaks, models.DefaultBreakCount+1)

	rr = server.do("PUT", "/api/v1/time-scheme/breaks/0", map[string]int{"length": 5}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &scheme)
	assert.Equal(t, 5, scheme.Breaks[0])

	rr = server.do("DELETE", "/api/v1/time-scheme/breaks/99", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = server.do("POST", "/api/v1/time-scheme/reset", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &scheme)
	assert.Equal(t, "09:00:00", scheme.Start)
	assert.False(t, scheme.IsPairMode)
}

func TestTimeSchemeGridDefaultsToToday(t *testing.T) {
	server := newTestServer(t, "")

	rr := server.do("GET", "/api/v1/time-scheme/grid", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var grid responses.DayGrid
	decodeData(t, rr, &grid)
	assert.Equal(t, "MONDAY", grid.Day)
	assert.Empty(t, grid.Periods)

	rr = server.do("GET", "/api/v1/time-scheme/grid?day=FRIDAY", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &grid)
	assert.Equal(t, "FRIDAY", grid.Day)
}

func TestLiveStatusRoutes(t *testing.T) {
	server := newTestServer(t, "")

	server.liveStatus.On("GetStatus", mock.Anything).Return(&responses.Status{
		Kind:      string(models.StatusResting),
		Countdown: "00:00:00",
	}, nil).Once()
	rr := server.do("GET", "/api/v1/status", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var status responses.Status
	decodeData(t, rr, &status)
	assert.Equal(t, string(models.StatusResting), status.Kind)

	server.liveStatus.On("GetOverview", mock.Anything).Return(&responses.Overview{
		DisplayDay: "TUESDAY",
		IsTomorrow: true,
	}, nil).Once()
	rr = server.do("GET", "/api/v1/status/overview", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var overview responses.Overview
	decodeData(t, rr, &overview)
	assert.True(t, overview.IsTomorrow)

	server.liveStatus.On("FindHomeworkDue", mock.Anything).Return([]responses.HomeworkDue{
		{LessonID: 0, Name: "Math", Homework: "ex. 5", DueDays: 1},
	}, nil).Once()
	rr = server.do("GET", "/api/v1/homework/due", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var due []responses.HomeworkDue
	decodeData(t, rr, &due)
	require.Len(t, due, 1)
	assert.Equal(t, 1, due[0].DueDays)

	server.liveStatus.On("GetStatus", mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	rr = server.do("GET", "/api/v1/status", nil, "")
	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)

	server.liveStatus.AssertExpectations(t)
}

func TestShareRoutes(t *testing.T) {
	server := newTestServer(t, testAPIKey)

	t.Run("export streams attachment", func(t *testing.T) {
		server.share.On("Export", mock.Anything).Return([]byte(`{"lessons":[]}`), nil).Once()

		rr := server.do("GET", "/api/v1/share/export?file_name=week", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"lessons":[]}`, rr.Body.String())
		assert.Contains(t, rr.Header().Get(constvars.HeaderContentDisposition), "week.schoe")
	})

	t.Run("import requires api key", func(t *testing.T) {
		rr := server.do("POST", "/api/v1/share/import", `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("import raw body", func(t *testing.T) {
		payload := `{"lessons":[],"specificLessons":[],"timeScheme":{}}`
		server.share.On("Import", mock.Anything, []byte(payload)).
			Return(&responses.ImportResult{}, nil).Once()

		rr := server.do("POST", "/api/v1/share/import", payload, testAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("import format error", func(t *testing.T) {
		server.share.On("Import", mock.Anything, []byte(`[]`)).
			Return(nil, exceptions.ErrImportFormat(errors.New("root must be an object"), "$")).Once()

		rr := server.do("POST", "/api/v1/share/import", `[]`, testAPIKey)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("import multipart file", func(t *testing.T) {
		payload := []byte(`{"lessons":[]}`)
		server.share.On("ImportFile", mock.Anything, "week.schoe", payload).
			Return(&responses.ImportResult{Lessons: 0}, nil).Once()

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile(constvars.FormFieldFile, "week.schoe")
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/v1/share/import/file", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("import multipart without file", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("note", "nothing"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/v1/share/import/file", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("export archive", func(t *testing.T) {
		server.share.On("ExportArchive", mock.Anything, &requests.ExportArchive{Name: "week"}).
			Return(&responses.ExportArchive{FileName: "week.schoe", URL: "http://minio/exports/week.schoe"}, nil).Once()

		rr := server.do("POST", "/api/v1/share/export/archive", map[string]string{"name": "week"}, testAPIKey)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		var archive responses.ExportArchive
		decodeData(t, rr, &archive)
		assert.Equal(t, "week.schoe", archive.FileName)
	})

	t.Run("export archive disabled", func(t *testing.T) {
		server.share.On("ExportArchive", mock.Anything, &requests.ExportArchive{}).
			Return(nil, exceptions.ErrExportStorageDisabled()).Once()

		rr := server.do("POST", "/api/v1/share/export/archive", nil, testAPIKey)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	server.share.AssertExpectations(t)
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	server := newTestServer(t, "")

	req := httptest.NewRequest("GET", "/api/v1/lessons", nil)
	req.Header.Set(constvars.HeaderXRequestID, "abc-123")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc-123", rr.Header().Get(constvars.HeaderXRequestID))
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, allowedOrigins(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, allowedOrigins(" https://a.example, ,https://b.example "))
}
