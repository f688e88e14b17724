package middlewares

import (
	"net/http"
	"schoolbell-service/internal/pkg/exceptions"
	"schoolbell-service/internal/pkg/utils"
)

// BodyLimit rejects declared oversized bodies up front and caps the rest with
// http.MaxBytesReader, so handlers see a read error past the limit.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := m.InternalConfig.App.RequestBodyLimitInMegabyte << 20
		if limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestTooLarge(r.ContentLength, limit))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
