package repository

import "farmops/entities"

type PriceBookRepository interface {
	Create(e *entities.PriceBookEntry) error
	Update(e *entities.PriceBookEntry) error
	Delete(id uint) error
	List() ([]entities.PriceBookEntry, error)
	ByYear(seasonYear int) ([]entities.PriceBookEntry, error)
}
