package repositories

import (
	"MailCheck/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TypoRepository interface {
	All() ([]models.DomainTypo, error)
	Upsert(typo *models.DomainTypo) error
	Delete(typo string) error
}

type typoRepository struct {
	db *gorm.DB
}

func NewTypoRepository(db *gorm.DB) TypoRepository {
	return &typoRepository{
		db: db,
	}
}

func (r *typoRepository) All() ([]models.DomainTypo, error) {
	var typos []models.DomainTypo
	err := r.db.Order("typo ASC").Find(&typos).Error
	if err != nil {
		return nil, err
	}
	return typos, nil
}

func (r *typoRepository) Upsert(typo *models.DomainTypo) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "typo"}},
		DoUpdates: clause.AssignmentColumns([]string{"correction", "updated_at"}),
	}).Create(typo).Error
}

func (r *typoRepository) Delete(typo string) error {
	result := r.db.Where("typo = ?", typo).Delete(&models.DomainTypo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
