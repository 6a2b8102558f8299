package entities

import "time"

const (
	OrderDraft     = "draft"
	OrderOrdered   = "ordered"
	OrderConfirmed = "confirmed"
	OrderPartial   = "partial"
	OrderComplete  = "complete"
)

type PurchaseOrder struct {
	OrderID    uint                `gorm:"primaryKey" json:"order_id"`
	VendorName string              `json:"vendor_name"`
	Status     string              `json:"status" gorm:"index"` // draft|ordered|confirmed|partial|complete
	OrderedOn  *time.Time          `json:"ordered_on,omitempty"`
	Lines      []PurchaseOrderLine `json:"lines" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PurchaseOrderLine struct {
	LineID      uint     `gorm:"primaryKey" json:"line_id"`
	OrderID     uint     `gorm:"index" json:"order_id"`
	ProductID   uint     `gorm:"index" json:"product_id"`
	OrderedQty  float64  `json:"ordered_qty"`
	ReceivedQty float64  `json:"received_qty"`
	Unit        string   `json:"unit"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
}

// Remaining is the quantity still due in: ordered minus received, floored at 0.
func (l PurchaseOrderLine) Remaining() float64 {
	r := l.OrderedQty - l.ReceivedQty
	if r < 0 {
		return 0
	}
	return r
}
