package middlewares

import (
	"net/http"
	"time"

	"MailCheck/utils/logger"
)

type responseWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func LoggerMiddleware(next http.Handler) http.Handler {
	log := logger.GetLogger("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			status:         200,
			wroteHeader:    false,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		event := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_ip", getIP(r)).
			Int("status", wrapped.status).
			Int64("size", wrapped.written).
			Dur("duration", duration)

		if reqID := r.Header.Get(RequestIDHeader); reqID != "" {
			event.Str("request_id", reqID)
		}

		event.Msg("Request processed")
	})
}
