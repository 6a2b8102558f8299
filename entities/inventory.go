package entities

import "time"

type InventoryItem struct {
	ItemID         uint    `gorm:"primaryKey" json:"item_id"`
	ProductID      uint    `gorm:"index" json:"product_id"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ContainerCount *int    `json:"container_count,omitempty"`
	Location       string  `json:"location"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
