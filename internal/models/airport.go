package models

import "time"

// AirportModel is a known airport keyed by its IATA code.
// Coordinates are nullable: some imported datasets lack them, and the
// coordinate resolver falls back to a deterministic pseudo-position.
type AirportModel struct {
	Code        string    `json:"code"         gorm:"type:char(3);primaryKey"`
	Name        string    `json:"name"         gorm:"not null"`
	City        string    `json:"city"`
	CountryCode string    `json:"country_code" gorm:"type:char(2)"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"modified"`
}

func (AirportModel) TableName() string { return "airports" }

// HasCoordinates reports whether both coordinates are present.
func (a AirportModel) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
