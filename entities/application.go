package entities

import "time"

// ApplicationRecord is a recorded field event: one trip across a field with
// one or more products. Append-only from the user's perspective; read by the
// variance and restriction engines.
type ApplicationRecord struct {
	RecordID     uint             `gorm:"primaryKey" json:"record_id"`
	FieldID      uint             `gorm:"index" json:"field_id"`
	CropID       uint             `gorm:"index" json:"crop_id"`
	TimingID     uint             `gorm:"index" json:"timing_id"`
	SeasonID     uint             `gorm:"index" json:"season_id"`
	DateApplied  time.Time        `json:"date_applied"`
	AcresTreated float64          `json:"acres_treated"`
	Applicator   string           `json:"applicator"`
	Products     []AppliedProduct `gorm:"serializer:json" json:"products"`
	Notes        string           `json:"notes"`

	CreatedAt time.Time
}

type AppliedProduct struct {
	ProductID    uint    `json:"product_id"`
	ActualRate   float64 `json:"actual_rate"`
	RateUnit     string  `json:"rate_unit"`
	TotalApplied float64 `json:"total_applied"`
}
