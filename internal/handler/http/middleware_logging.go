package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-library-catalog/internal/logger"
)

// withLogging writes one access log line per request. The request-scoped
// logger is read after the handler ran, so fields added to it downstream
// (user_id from the admin guard) appear in the line.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		log := logger.FromRequest(r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
