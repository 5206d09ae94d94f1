package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"MailCheck/services"

	"github.com/stretchr/testify/assert"
)

type stubTokenValidator struct {
	err error
}

func (s *stubTokenValidator) ValidateToken(token string) error {
	return s.err
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		validateErr    error
		expectedStatus int
	}{
		{
			name:           "Valid bearer token",
			header:         "Bearer some-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Malformed header",
			header:         "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			header:         "Bearer bad-token",
			validateErr:    services.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(&stubTokenValidator{err: tt.validateErr})
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/mailcheck/admin/typos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
