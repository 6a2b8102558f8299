package repository

import "farmops/entities"

type PurchaseRepository interface {
	Create(o *entities.PurchaseOrder) error
	Update(o *entities.PurchaseOrder) error
	Delete(id uint) error
	FindByID(id uint) (*entities.PurchaseOrder, error)
	List() ([]entities.PurchaseOrder, error)
	// Open returns orders whose lines can still arrive: ordered, confirmed
	// or partially received. Drafts and completed orders are excluded.
	Open() ([]entities.PurchaseOrder, error)
	ReceiveLine(lineID uint, qty float64) error
}
