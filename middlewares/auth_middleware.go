package middlewares

import (
	"net/http"
	"strings"

	"MailCheck/utils/response"
)

type TokenValidator interface {
	ValidateToken(token string) error
}

type AuthMiddleware struct {
	auth TokenValidator
}

func NewAuthMiddleware(auth TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.JSONError(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			response.JSONError(w, "Invalid authorization header format", http.StatusUnauthorized)
			return
		}

		if err := m.auth.ValidateToken(tokenParts[1]); err != nil {
			response.JSONError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
