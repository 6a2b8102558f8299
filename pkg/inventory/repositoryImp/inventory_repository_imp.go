package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/inventory/repository"
)

type invRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &invRepo{db} }

func (r *invRepo) Create(it *entities.InventoryItem) error { return r.db.Create(it).Error }
func (r *invRepo) Update(it *entities.InventoryItem) error { return r.db.Save(it).Error }
func (r *invRepo) Delete(id uint) error {
	return r.db.Delete(&entities.InventoryItem{}, id).Error
}

func (r *invRepo) List() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) ByProduct(productID uint) ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Where("product_id = ?", productID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) Adjust(id uint, delta float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var it entities.InventoryItem
		if err := tx.First(&it, id).Error; err != nil {
			return err
		}
		it.Quantity += delta
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		return tx.Save(&it).Error
	})
}
