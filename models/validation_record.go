package models

import (
	"time"
)

// ValidationRecord is one row of validation history.
type ValidationRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"index" json:"email"`
	IsValid      bool      `json:"is_valid"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Suggestion   string    `json:"suggestion,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidationStats aggregates the history store for the admin API.
type ValidationStats struct {
	Total     int64 `json:"total"`
	Valid     int64 `json:"valid"`
	Invalid   int64 `json:"invalid"`
	Suggested int64 `json:"suggested"`
}
