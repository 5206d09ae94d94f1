package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"MailCheck/services"
	"MailCheck/utils/logger"
	"MailCheck/utils/metrics"
)

type RateLimiter struct {
	limiter services.RateLimiter
}

func NewRateLimiter(limiter services.RateLimiter) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
	}
}

func (rl *RateLimiter) RateLimit(next http.Handler) http.Handler {
	log := logger.GetLogger("rate_limit")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := getIP(r)
		key := fmt.Sprintf("mailcheck:rate:%s:%s", ip, r.URL.Path)

		allowed, err := rl.limiter.Allow(key)
		if err != nil {
			// Fail open: a broken limiter must not take the API down.
			log.Warn().Err(err).Str("ip", ip).Msg("Rate limit check failed")
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			metrics.RecordRateLimitHit()
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getIP extracts the client IP address from the request
func getIP(r *http.Request) string {
	// Check X-Forwarded-For header
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.Split(forwarded, ",")[0]
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	return strings.Split(r.RemoteAddr, ":")[0]
}
