package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisInterface interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type DBInterface interface {
	DB() (*sql.DB, error)
}

type HealthController struct {
	db    DBInterface
	redis RedisInterface
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

func NewHealthController(db DBInterface, redis RedisInterface) *HealthController {
	return &HealthController{
		db:    db,
		redis: redis,
	}
}

func (h *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services := make(map[string]string)
	overallStatus := "healthy"

	// Check database
	if err := h.checkDatabase(); err != nil {
		services["database"] = "error: " + err.Error()
		overallStatus = "unhealthy"
	} else {
		services["database"] = "healthy"
	}

	// Check Redis
	if err := h.redis.Ping(ctx).Err(); err != nil {
		services["redis"] = "error: " + err.Error()
		overallStatus = "unhealthy"
	} else {
		services["redis"] = "healthy"
	}

	response := HealthResponse{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Services:  services,
	}

	w.Header().Set("Content-Type", "application/json")
	if overallStatus != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(response)
}

func (h *HealthController) checkDatabase() error {
	if h.db == nil {
		return errors.New("database connection is nil")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	if sqlDB == nil {
		return errors.New("database connection is nil")
	}
	return sqlDB.Ping()
}
