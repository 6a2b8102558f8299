package entities

import "time"

type Field struct {
	FieldID uint    `gorm:"primaryKey" json:"field_id"`
	UserID  string  `json:"user_id" gorm:"index"`
	Name    string  `json:"name"`
	Acres   float64 `json:"acres"`
	County  string  `json:"county"`
	State   string  `json:"state"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldAssignment ties a field to the crop grown on it in one season.
// PreviousCrop records what was on the field before this assignment, for
// rotation-interval lookback when no older season data exists.
type FieldAssignment struct {
	AssignID     uint      `gorm:"primaryKey" json:"assign_id"`
	FieldID      uint      `gorm:"index" json:"field_id"`
	SeasonID     uint      `gorm:"index" json:"season_id"`
	CropID       uint      `gorm:"index" json:"crop_id"`
	PreviousCrop string    `json:"previous_crop"`
	AssignedOn   time.Time `json:"assigned_on"`
}
