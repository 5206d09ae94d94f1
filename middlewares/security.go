package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"MailCheck/utils/logger"
)

type SecurityConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
	Environment      string
}

func NewSecurityConfig(environment string, allowedOrigins []string) *SecurityConfig {
	return &SecurityConfig{
		Environment:    environment,
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			RequestIDHeader,
		},
		MaxAge:           3600,
		AllowCredentials: true,
	}
}

func (c *SecurityConfig) SecurityMiddleware(next http.Handler) http.Handler {
	log := logger.GetLogger("security")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Security headers first
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")

		if c.Environment == "production" {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		origin := r.Header.Get("Origin")
		if origin != "" {
			if !c.isAllowedOrigin(origin) {
				log.Warn().
					Str("origin", origin).
					Str("path", r.URL.Path).
					Msg("Invalid origin attempt")
				http.Error(w, "Invalid origin", http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(c.AllowedMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(c.AllowedHeaders, ", "))
			if c.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(c.MaxAge))
				w.WriteHeader(http.StatusOK)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (c *SecurityConfig) isAllowedOrigin(origin string) bool {
	// Allow all origins outside production
	if c.Environment != "production" {
		return true
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == origin {
			return true
		}
	}
	return false
}
