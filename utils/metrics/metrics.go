package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status_code"},
	)

	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_validations_total",
			Help: "Total number of email validations by outcome",
		},
		[]string{"result"},
	)

	SuggestionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "email_suggestions_total",
			Help: "Total number of validations that produced a domain correction",
		},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_lookups_total",
			Help: "Total number of result cache lookups by status",
		},
		[]string{"status"},
	)

	DatabaseOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "database_operations_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	RateLimitHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_hits_total",
			Help: "Total number of rate limit hits",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ValidationsTotal)
	prometheus.MustRegister(SuggestionsTotal)
	prometheus.MustRegister(CacheLookups)
	prometheus.MustRegister(DatabaseOperations)
	prometheus.MustRegister(RateLimitHits)
}

// RecordRequestDuration is middleware that records the duration of HTTP requests
func RecordRequestDuration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, Status: http.StatusOK}
		next.ServeHTTP(rec, r)
		duration := time.Since(start).Seconds()
		RequestDuration.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(rec.Status)).Observe(duration)
	})
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

// RecordValidation records a completed validation with its outcome
func RecordValidation(valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	ValidationsTotal.WithLabelValues(result).Inc()
}

// RecordSuggestion records a validation that produced a typo correction
func RecordSuggestion() {
	SuggestionsTotal.Inc()
}

// RecordCacheLookup records a result cache lookup ("hit", "miss" or "error")
func RecordCacheLookup(status string) {
	CacheLookups.WithLabelValues(status).Inc()
}

// RecordDatabaseOperation records a database operation with its status
func RecordDatabaseOperation(operation, status string) {
	DatabaseOperations.WithLabelValues(operation, status).Inc()
}

// RecordRateLimitHit increments the rate limit hits counter
func RecordRateLimitHit() {
	RateLimitHits.Inc()
}

// Handler returns an HTTP handler for the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
