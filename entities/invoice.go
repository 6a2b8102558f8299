package entities

import "time"

type Invoice struct {
	InvoiceID   uint          `gorm:"primaryKey" json:"invoice_id"`
	VendorName  string        `json:"vendor_name"`
	SeasonYear  int           `gorm:"index" json:"season_year"`
	InvoiceDate time.Time     `json:"invoice_date"`
	Number      string        `json:"number"`
	Lines       []InvoiceLine `json:"lines" gorm:"foreignKey:InvoiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type InvoiceLine struct {
	LineID         uint     `gorm:"primaryKey" json:"line_id"`
	InvoiceID      uint     `gorm:"index" json:"invoice_id"`
	ProductID      uint     `gorm:"index" json:"product_id"`
	Quantity       float64  `json:"quantity"`
	Unit           string   `json:"unit"`
	LandedUnitCost *float64 `json:"landed_unit_cost,omitempty"` // per-unit cost incl. freight/fees
	LandedTotal    *float64 `json:"landed_total,omitempty"`
}
