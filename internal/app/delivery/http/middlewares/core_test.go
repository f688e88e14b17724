package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"schoolbell-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares("")

	var requestID string
	var isClient bool
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		isClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/status", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", requestID)
		assert.True(t, isClient)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/status", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, requestID)
		assert.False(t, isClient)
		assert.Equal(t, requestID, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares("")

	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	rr := httptest.NewRecorder()
	require.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientCannotProcessRequest)
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	middlewares := newTestMiddlewares("")

	handler := middlewares.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}

func TestBodyLimit(t *testing.T) {
	middlewares := newTestMiddlewares("")

	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/share/import", strings.NewReader(`{"lessons":[]}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("declared oversized body rejected", func(t *testing.T) {
		body := strings.Repeat("a", (1<<20)+1)
		req := httptest.NewRequest("POST", "/api/v1/share/import", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("undeclared oversized body fails to read", func(t *testing.T) {
		body := strings.Repeat("a", (1<<20)+1)
		req := httptest.NewRequest("POST", "/api/v1/share/import", strings.NewReader(body))
		req.ContentLength = -1
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestConditionalRateLimit(t *testing.T) {
	middlewares := newTestMiddlewares(testAPIKey)

	handler := middlewares.APIKeyAuth(
		middlewares.ConditionalRateLimit(middlewares.CreateRateLimiter())(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
		),
	)

	send := func(withKey bool) int {
		req := httptest.NewRequest("GET", "/api/v1/status", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		if withKey {
			req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send(false))
	assert.Equal(t, http.StatusOK, send(false))
	assert.Equal(t, http.StatusTooManyRequests, send(false))
	assert.Equal(t, http.StatusOK, send(true), "api key requests skip the per-IP limit")
}
