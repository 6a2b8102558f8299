package repository

import "farmops/entities"

type ApplicationRecordRepository interface {
	Create(rec *entities.ApplicationRecord) error
	Delete(id uint) error
	BySeason(seasonID uint) ([]entities.ApplicationRecord, error)
	ByField(fieldID uint) ([]entities.ApplicationRecord, error)
	List() ([]entities.ApplicationRecord, error)
}
