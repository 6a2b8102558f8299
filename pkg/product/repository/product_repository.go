package repository

import "farmops/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	Update(p *entities.Product) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Product, error)
	List() ([]entities.Product, error)
}
