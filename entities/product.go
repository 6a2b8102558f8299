package entities

import "time"

type Product struct {
	ProductID    uint         `gorm:"primaryKey" json:"product_id"`
	Name         string       `json:"name"`
	Manufacturer string       `json:"manufacturer"`
	Roles        []string     `gorm:"serializer:json" json:"roles"` // herbicide|fungicide|fertility|adjuvant|...
	Chemical     ChemicalData `gorm:"serializer:json" json:"chemical"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChemicalData struct {
	ActiveIngredients []string      `json:"active_ingredients,omitempty"`
	EPANumber         string        `json:"epa_number,omitempty"`
	SignalWord        string        `json:"signal_word,omitempty"`
	Density           *float64      `json:"density,omitempty"` // lbs per gal, when the label declares it
	Restrictions      *Restrictions `json:"restrictions,omitempty"`
}

// Restrictions holds a product's agronomic/regulatory limits. Every field is
// optional; a nil field means no constraint of that kind.
type Restrictions struct {
	PHIDays                  *int                  `json:"phi_days,omitempty"`
	PHIByCrop                []CropPHI             `json:"phi_by_crop,omitempty"`
	REIHours                 *float64              `json:"rei_hours,omitempty"`
	RotationRestrictions     []RotationRestriction `json:"rotation_restrictions,omitempty"`
	MaxRatePerApplication    *RateCap              `json:"max_rate_per_application,omitempty"`
	MaxRatePerSeason         *RateCap              `json:"max_rate_per_season,omitempty"`
	MaxApplicationsPerSeason *int                  `json:"max_applications_per_season,omitempty"`
}

type CropPHI struct {
	CropName string `json:"crop_name"`
	Days     int    `json:"days"`
}

type RotationRestriction struct {
	CropName       string `json:"crop_name"`
	IntervalDays   *int   `json:"interval_days,omitempty"`
	IntervalMonths *int   `json:"interval_months,omitempty"`
}

type RateCap struct {
	Rate float64 `json:"rate"`
	Unit string  `json:"unit"` // lbs ai/ac, gal/ac ...
}
