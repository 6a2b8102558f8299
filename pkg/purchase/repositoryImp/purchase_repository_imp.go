package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/purchase/repository"
)

var openStatuses = []string{entities.OrderOrdered, entities.OrderConfirmed, entities.OrderPartial}

type purchaseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PurchaseRepository { return &purchaseRepo{db} }

func (r *purchaseRepo) Create(o *entities.PurchaseOrder) error { return r.db.Create(o).Error }

func (r *purchaseRepo) Update(o *entities.PurchaseOrder) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(o).Error
}

func (r *purchaseRepo) Delete(id uint) error {
	return r.db.Delete(&entities.PurchaseOrder{}, id).Error
}

func (r *purchaseRepo) FindByID(id uint) (*entities.PurchaseOrder, error) {
	var o entities.PurchaseOrder
	if err := r.db.Preload("Lines").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *purchaseRepo) List() ([]entities.PurchaseOrder, error) {
	var out []entities.PurchaseOrder
	if err := r.db.Preload("Lines").Order("order_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *purchaseRepo) Open() ([]entities.PurchaseOrder, error) {
	var out []entities.PurchaseOrder
	if err := r.db.Preload("Lines").Where("status IN ?", openStatuses).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiveLine books qty against a line and rolls the parent order's status
// forward (partial, or complete once every line is fully received).
func (r *purchaseRepo) ReceiveLine(lineID uint, qty float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var line entities.PurchaseOrderLine
		if err := tx.First(&line, lineID).Error; err != nil {
			return err
		}
		line.ReceivedQty += qty
		if line.ReceivedQty > line.OrderedQty {
			line.ReceivedQty = line.OrderedQty
		}
		if err := tx.Save(&line).Error; err != nil {
			return err
		}

		var order entities.PurchaseOrder
		if err := tx.Preload("Lines").First(&order, line.OrderID).Error; err != nil {
			return err
		}
		status := entities.OrderComplete
		for _, l := range order.Lines {
			if l.Remaining() > 0 {
				status = entities.OrderPartial
				break
			}
		}
		return tx.Model(&order).Update("status", status).Error
	})
}
