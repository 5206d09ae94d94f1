package services

import (
	"context"
	"encoding/json"
	"time"

	"MailCheck/models"
	"MailCheck/repositories"
	"MailCheck/utils/logger"
	"MailCheck/utils/metrics"
	"MailCheck/validator"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const resultCachePrefix = "mailcheck:result:"

// ValidationService wraps the core validator with a redis result cache,
// metrics, and best-effort history persistence. The core contract is
// untouched: a validation always returns a result, whatever the cache or
// database are doing.
type ValidationService struct {
	records  repositories.RecordRepository
	typos    *TypoService
	redis    *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

func NewValidationService(records repositories.RecordRepository, typos *TypoService, redisClient *redis.Client, cacheTTL time.Duration) *ValidationService {
	return &ValidationService{
		records:  records,
		typos:    typos,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		log:      logger.GetLogger("validation_service"),
	}
}

// Validate returns the diagnostic report for one address.
func (s *ValidationService) Validate(ctx context.Context, email string) validator.ValidationResult {
	// Keyed on the raw input, not the trimmed address: a cached result must
	// be indistinguishable from a fresh one, including the whitespace warning.
	cacheKey := resultCachePrefix + email

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached
	}

	result := validator.ValidateWithTypos(email, s.typos.Table())

	metrics.RecordValidation(result.IsValid)
	if result.Suggestion != "" {
		metrics.RecordSuggestion()
	}

	s.toCache(ctx, cacheKey, result)
	s.persist(result)

	return result
}

// ValidateBatch validates each address in order.
func (s *ValidationService) ValidateBatch(ctx context.Context, emails []string) []validator.ValidationResult {
	results := make([]validator.ValidationResult, 0, len(emails))
	for _, email := range emails {
		results = append(results, s.Validate(ctx, email))
	}
	return results
}

func (s *ValidationService) fromCache(ctx context.Context, key string) (validator.ValidationResult, bool) {
	if s.redis == nil {
		return validator.ValidationResult{}, false
	}

	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheLookup("miss")
		return validator.ValidationResult{}, false
	}
	if err != nil {
		metrics.RecordCacheLookup("error")
		s.log.Warn().Err(err).Msg("Result cache lookup failed")
		return validator.ValidationResult{}, false
	}

	var result validator.ValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		metrics.RecordCacheLookup("error")
		return validator.ValidationResult{}, false
	}

	metrics.RecordCacheLookup("hit")
	return result, true
}

func (s *ValidationService) toCache(ctx context.Context, key string, result validator.ValidationResult) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Result cache write failed")
	}
}

func (s *ValidationService) persist(result validator.ValidationResult) {
	if s.records == nil {
		return
	}

	record := &models.ValidationRecord{
		Email:        result.Email,
		IsValid:      result.IsValid,
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
		Suggestion:   result.Suggestion,
	}
	if err := s.records.Create(record); err != nil {
		metrics.RecordDatabaseOperation("create_validation_record", "failure")
		s.log.Error().Err(err).Str("email", result.Email).Msg("Failed to persist validation record")
		return
	}
	metrics.RecordDatabaseOperation("create_validation_record", "success")
}
