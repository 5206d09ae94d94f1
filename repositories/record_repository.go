package repositories

import (
	"errors"
	"time"

	"MailCheck/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

type RecordRepository interface {
	Create(record *models.ValidationRecord) error
	Recent(limit int) ([]models.ValidationRecord, error)
	Stats() (*models.ValidationStats, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) Create(record *models.ValidationRecord) error {
	return r.db.Create(record).Error
}

func (r *recordRepository) Recent(limit int) ([]models.ValidationRecord, error) {
	var records []models.ValidationRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) Stats() (*models.ValidationStats, error) {
	stats := &models.ValidationStats{}

	if err := r.db.Model(&models.ValidationRecord{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.ValidationRecord{}).Where("is_valid = ?", true).Count(&stats.Valid).Error; err != nil {
		return nil, err
	}
	stats.Invalid = stats.Total - stats.Valid
	if err := r.db.Model(&models.ValidationRecord{}).Where("suggestion <> ''").Count(&stats.Suggested).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *recordRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.ValidationRecord{})
	return result.RowsAffected, result.Error
}
