package entities

import "time"

type Season struct {
	SeasonID uint   `gorm:"primaryKey" json:"season_id"`
	UserID   string `json:"user_id" gorm:"index"`
	Name     string `json:"name"`
	Year     int    `json:"year" gorm:"index"`
	Crops    []Crop `json:"crops" gorm:"foreignKey:SeasonID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Crop struct {
	CropID     uint                `gorm:"primaryKey" json:"crop_id"`
	SeasonID   uint                `gorm:"index" json:"season_id"`
	Name       string              `json:"name"`
	TotalAcres float64             `json:"total_acres"`
	Tiers      []Tier              `json:"tiers" gorm:"foreignKey:CropID"`
	Timings    []ApplicationTiming `json:"timings" gorm:"foreignKey:CropID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tier is an independent treatment zone covering Percent of the crop's acres.
// Percentages across tiers need not sum to 100 (zones may overlap).
type Tier struct {
	TierID  uint    `gorm:"primaryKey" json:"tier_id"`
	CropID  uint    `gorm:"index" json:"crop_id"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type ApplicationTiming struct {
	TimingID uint                 `gorm:"primaryKey" json:"timing_id"`
	CropID   uint                 `gorm:"index" json:"crop_id"`
	Name     string               `json:"name"` // e.g. "V4 Foliar"
	Ord      int                  `json:"ord"`
	Products []PlannedApplication `json:"products" gorm:"foreignKey:TimingID"`
}

type PlannedApplication struct {
	PlanAppID uint    `gorm:"primaryKey" json:"plan_app_id"`
	TimingID  uint    `gorm:"index" json:"timing_id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Rate      float64 `json:"rate"`
	RateUnit  string  `json:"rate_unit"` // gal/ac, lbs/ac, oz/ac ...
	TierIDs   []uint  `gorm:"serializer:json" json:"tier_ids"`
}
