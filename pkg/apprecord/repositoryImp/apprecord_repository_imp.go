package repositoryImp

import (
	"farmops/entities"
	"farmops/pkg/apprecord/repository"

	"gorm.io/gorm"
)

type apprecordRepository struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ApplicationRecordRepository {
	return &apprecordRepository{db: db}
}

func (r *apprecordRepository) Create(rec *entities.ApplicationRecord) error {
	return r.db.Create(rec).Error
}

func (r *apprecordRepository) Delete(id uint) error {
	return r.db.Delete(&entities.ApplicationRecord{}, id).Error
}

func (r *apprecordRepository) BySeason(seasonID uint) ([]entities.ApplicationRecord, error) {
	var recs []entities.ApplicationRecord
	err := r.db.Where("season_id = ?", seasonID).Order("date_applied DESC").Find(&recs).Error
	return recs, err
}

func (r *apprecordRepository) ByField(fieldID uint) ([]entities.ApplicationRecord, error) {
	var recs []entities.ApplicationRecord
	err := r.db.Where("field_id = ?", fieldID).Order("date_applied DESC").Find(&recs).Error
	return recs, err
}

func (r *apprecordRepository) List() ([]entities.ApplicationRecord, error) {
	var recs []entities.ApplicationRecord
	err := r.db.Order("date_applied DESC").Find(&recs).Error
	return recs, err
}
