package middlewares

import (
	"net/http"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID assigns a request ID when the client did not send one and echoes
// it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			r.Header.Set(RequestIDHeader, reqID)
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r)
	})
}
