package repository

import "farmops/entities"

type InventoryRepository interface {
	Create(it *entities.InventoryItem) error
	Update(it *entities.InventoryItem) error
	Delete(id uint) error
	List() ([]entities.InventoryItem, error)
	ByProduct(productID uint) ([]entities.InventoryItem, error)
	// Adjust adds delta (may be negative) to an item's quantity, flooring
	// at zero. Purchase receipt and application deduction both land here.
	Adjust(id uint, delta float64) error
}
