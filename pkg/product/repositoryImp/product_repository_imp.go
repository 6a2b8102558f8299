package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }
func (r *productRepo) Update(p *entities.Product) error { return r.db.Save(p).Error }
func (r *productRepo) Delete(id uint) error             { return r.db.Delete(&entities.Product{}, id).Error }

func (r *productRepo) FindByID(id uint) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List() ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
