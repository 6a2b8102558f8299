package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/season/repository"
)

type seasonRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SeasonRepository { return &seasonRepo{db} }

func (r *seasonRepo) preloaded() *gorm.DB {
	return r.db.
		Preload("Crops.Tiers").
		Preload("Crops.Timings.Products").
		Preload("Crops.Timings")
}

func (r *seasonRepo) Create(s *entities.Season) error { return r.db.Create(s).Error }

func (r *seasonRepo) Update(s *entities.Season) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *seasonRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Season{}, id).Error
}

func (r *seasonRepo) FindByID(id uint) (*entities.Season, error) {
	var s entities.Season
	if err := r.preloaded().First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) FindByYear(year int) (*entities.Season, error) {
	var s entities.Season
	if err := r.preloaded().Where("year = ?", year).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *seasonRepo) List() ([]entities.Season, error) {
	var out []entities.Season
	if err := r.preloaded().Order("year DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *seasonRepo) ListBefore(year int) ([]entities.Season, error) {
	var out []entities.Season
	if err := r.preloaded().Where("year < ?", year).Order("year DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
