package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MailCheck/config"
	"MailCheck/controllers"
	"MailCheck/database"
	"MailCheck/middlewares"
	"MailCheck/models"
	"MailCheck/repositories"
	"MailCheck/services"
	"MailCheck/utils/logger"
	"MailCheck/utils/metrics"
	"MailCheck/validator"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Dependencies holds all service dependencies
type Dependencies struct {
	RecordRepo        repositories.RecordRepository
	TypoRepo          repositories.TypoRepository
	TypoService       *services.TypoService
	ValidationService *services.ValidationService
	AdminService      *services.AdminService
	RedisClient       *redis.Client
	DB                *gorm.DB
}

// NewDependencies creates a new Dependencies instance
func NewDependencies(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log zerolog.Logger) *Dependencies {
	recordRepo := repositories.NewRecordRepository(db)
	typoRepo := repositories.NewTypoRepository(db)

	var extraTypos map[string]string
	if cfg.TypoFile != "" {
		var err error
		extraTypos, err = validator.LoadTypoFile(cfg.TypoFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.TypoFile).Msg("Failed to load typo file")
		}
		log.Info().Int("entries", len(extraTypos)).Msg("Loaded extra typo corrections")
	}

	typoService := services.NewTypoService(typoRepo, extraTypos)
	if err := typoService.Reload(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load typo overrides")
	}

	validationService := services.NewValidationService(recordRepo, typoService, redisClient, cfg.CacheTTL)

	adminService, err := services.NewAdminService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize admin service")
	}

	return &Dependencies{
		RecordRepo:        recordRepo,
		TypoRepo:          typoRepo,
		TypoService:       typoService,
		ValidationService: validationService,
		AdminService:      adminService,
		RedisClient:       redisClient,
		DB:                db,
	}
}

func initLogger() zerolog.Logger {
	logger.Init()
	return logger.GetLogger("main")
}

func initDatabase(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	err = db.AutoMigrate(&models.ValidationRecord{}, &models.DomainTypo{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database schema")
	}
	log.Info().Msg("Database schema migrated successfully")
	return db
}

func initRedis(cfg *config.Config, log zerolog.Logger) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	log.Info().Msg("Connected to Redis successfully")
	return redisClient
}

func setupRouter(deps *Dependencies, cfg *config.Config) *mux.Router {
	healthController := controllers.NewHealthController(deps.DB, deps.RedisClient)
	validateController := controllers.NewValidateController(deps.ValidationService, cfg.BatchLimit)
	adminController := controllers.NewAdminController(deps.AdminService, deps.TypoService, deps.RecordRepo)

	authMiddleware := middlewares.NewAuthMiddleware(deps.AdminService)
	rateLimiter := middlewares.NewRateLimiter(services.NewRateLimiter(deps.RedisClient, services.RateLimiterConfig{
		MaxAttempts: cfg.RateLimit.MaxAttempts,
		Window:      cfg.RateLimit.Window,
	}))
	securityConfig := middlewares.NewSecurityConfig(cfg.Environment, cfg.AllowedOrigins)

	router := mux.NewRouter()

	router.Use(middlewares.RequestID)
	router.Use(middlewares.LoggerMiddleware)
	router.Use(metrics.RecordRequestDuration)
	router.Use(securityConfig.SecurityMiddleware)

	router.HandleFunc("/health", healthController.Check).Methods("GET")
	router.Handle("/metrics", metrics.Handler())

	api := router.PathPrefix("/api/mailcheck").Subrouter()
	api.Use(rateLimiter.RateLimit)
	api.HandleFunc("/validate", validateController.Validate).Methods("POST")
	api.HandleFunc("/validate/batch", validateController.ValidateBatch).Methods("POST")
	api.HandleFunc("/admin/login", adminController.Login).Methods("POST")

	admin := router.PathPrefix("/api/mailcheck/admin").Subrouter()
	admin.Use(authMiddleware.Authenticate)
	admin.HandleFunc("/typos", adminController.ListTypos).Methods("GET")
	admin.HandleFunc("/typos", adminController.UpsertTypo).Methods("PUT")
	admin.HandleFunc("/typos/{typo}", adminController.DeleteTypo).Methods("DELETE")
	admin.HandleFunc("/stats", adminController.Stats).Methods("GET")

	return router
}

func startCleanupRoutine(ctx context.Context, recordRepo repositories.RecordRepository, retentionDays int, log zerolog.Logger) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				deleted, err := recordRepo.DeleteOlderThan(cutoff)
				if err != nil {
					log.Error().Err(err).Msg("Failed to clean up old validation records")
					continue
				}
				if deleted > 0 {
					log.Info().Int64("deleted", deleted).Msg("Cleaned up old validation records")
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func startServer(router *mux.Router, cfg *config.Config, log zerolog.Logger, deps *Dependencies) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Create context that listens for signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Close database connection
	sqlDB, err := deps.DB.DB()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get database instance")
	} else {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database connection")
		}
	}

	// Close Redis connection
	if err := deps.RedisClient.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing Redis connection")
	}

	log.Info().Msg("Server exited properly")
}

func main() {
	log := initLogger()
	log.Info().Msg("Starting email validation service")

	cfg := config.LoadConfig()
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")

	db := initDatabase(cfg, log)
	redisClient := initRedis(cfg, log)
	deps := NewDependencies(db, redisClient, cfg, log)

	router := setupRouter(deps, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startCleanupRoutine(ctx, deps.RecordRepo, cfg.RetentionDays, log)
	startServer(router, cfg, log, deps)
}
