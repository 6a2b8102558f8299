package entities

import "time"

// PriceBookEntry is one quoted/estimated/awarded price for a product in a
// season year. Source drives planned-price ranking; entries with source
// "invoice" are bookkeeping only and never feed the planned baseline.
type PriceBookEntry struct {
	EntryID    uint    `gorm:"primaryKey" json:"entry_id"`
	ProductID  uint    `gorm:"index" json:"product_id"`
	SeasonYear int     `gorm:"index" json:"season_year"`
	Price      float64 `json:"price"`
	PriceUOM   string  `json:"price_uom"`
	Source     string  `json:"source"` // manual_override|manual|awarded|estimated|invoice
	VendorName string  `json:"vendor_name"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
