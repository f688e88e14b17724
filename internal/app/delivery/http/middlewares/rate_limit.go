package middlewares

import (
	"net/http"
	"schoolbell-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/httprate"
)

// ConditionalRateLimit lets requests authenticated by API key skip the
// per-IP limit applied to everyone else.
func (m *Middlewares) ConditionalRateLimit(limiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := limiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool); ok && apiKeyAuth {
				next.ServeHTTP(w, r)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}

// CreateRateLimiter allows MaxRequests per IP within a window of
// MaxTimeRequestsPerSeconds seconds.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}
