package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/pricebook/repository"
)

type priceBookRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PriceBookRepository { return &priceBookRepo{db} }

func (r *priceBookRepo) Create(e *entities.PriceBookEntry) error { return r.db.Create(e).Error }
func (r *priceBookRepo) Update(e *entities.PriceBookEntry) error { return r.db.Save(e).Error }

func (r *priceBookRepo) Delete(id uint) error {
	return r.db.Delete(&entities.PriceBookEntry{}, id).Error
}

func (r *priceBookRepo) List() ([]entities.PriceBookEntry, error) {
	var out []entities.PriceBookEntry
	if err := r.db.Order("season_year DESC, product_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *priceBookRepo) ByYear(seasonYear int) ([]entities.PriceBookEntry, error) {
	var out []entities.PriceBookEntry
	if err := r.db.Where("season_year = ?", seasonYear).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
