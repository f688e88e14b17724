package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth marks requests carrying the configured key. A request without
// the header passes through unmarked; a wrong key is rejected.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" || m.InternalConfig.App.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !m.apiKeyMatches(apiKey) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAPIKey guards mutating routes. With no key configured the service
// runs open and every request passes.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.InternalConfig.App.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			m.Log.Warn("API key missing on protected route",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if !m.apiKeyMatches(apiKey) {
			m.Log.Warn("invalid API key on protected route",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) apiKeyMatches(apiKey string) bool {
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.InternalConfig.App.APIKey)) == 1
}
