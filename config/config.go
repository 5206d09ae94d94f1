package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	MaxAttempts int
	Window      time.Duration
}

type Config struct {
	Port           string
	Environment    string
	AllowedOrigins []string
	DatabaseURL    string
	Redis          RedisConfig
	JWTSecret      string
	JWTExpiry      time.Duration
	AdminAPIKey    string
	TypoFile       string
	CacheTTL       time.Duration
	RateLimit      RateLimitConfig
	RetentionDays  int
	BatchLimit     int
}

func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENV", "development"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS"),
		DatabaseURL:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=mailcheck_db port=5432 sslmode=disable"),
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASS", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:   getDurationEnv("JWT_EXPIRY", 24*time.Hour),
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		TypoFile:    getEnv("TYPO_FILE", ""),
		CacheTTL:    getDurationEnv("CACHE_TTL", time.Hour),
		RateLimit: RateLimitConfig{
			MaxAttempts: getIntEnv("RATE_LIMIT_MAX", 60),
			Window:      getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		},
		RetentionDays: getIntEnv("RETENTION_DAYS", 30),
		BatchLimit:    getIntEnv("BATCH_LIMIT", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getIntEnv(key string, defaultValue int) int {
	if str := os.Getenv(key); str != "" {
		if value, err := strconv.Atoi(str); err == nil {
			return value
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if str := os.Getenv(key); str != "" {
		if value, err := time.ParseDuration(str); err == nil {
			return value
		}
	}
	return defaultValue
}
