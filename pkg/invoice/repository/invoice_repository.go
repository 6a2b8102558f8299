package repository

import "farmops/entities"

type InvoiceRepository interface {
	Create(inv *entities.Invoice) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Invoice, error)
	List() ([]entities.Invoice, error)
	ByYear(seasonYear int) ([]entities.Invoice, error)
}
