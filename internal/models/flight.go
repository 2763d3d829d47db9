package models

import "time"

// FlightModel is the central record: one logged flight of one user.
//
// DistanceMiles and CarbonFootprintKg are derived values. They are recomputed
// whenever the departure/arrival pair changes and are never accepted from
// client input directly.
type FlightModel struct {
	Base
	UserID        string  `json:"-"              gorm:"index;not null"`
	DepartureCode string  `json:"departure_code" gorm:"type:char(3);index;not null"`
	ArrivalCode   string  `json:"arrival_code"   gorm:"type:char(3);index;not null"`
	AirlineCode   *string `json:"airline_code"   gorm:"type:varchar(3);index"`

	FlightDate    time.Time `json:"flight_date"  gorm:"index;not null"`
	FlightNumber  string    `json:"flight_number"`
	AircraftType  string    `json:"aircraft_type"`
	DurationHours *float64  `json:"duration_hours"`

	TripCost         *float64 `json:"trip_cost"`
	TripCostCurrency string   `json:"trip_cost_currency" gorm:"type:char(3)"`

	DistanceMiles     float64 `json:"distance_miles"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`

	CarbonOffset          bool       `json:"carbon_offset" gorm:"default:false"`
	CarbonOffsetProvider  string     `json:"carbon_offset_provider"`
	CarbonOffsetReference string     `json:"carbon_offset_reference"`
	CarbonOffsetDate      *time.Time `json:"carbon_offset_date"`

	Journal string `json:"journal" gorm:"type:longtext"`

	Departure *AirportModel `json:"departure,omitempty" gorm:"foreignKey:DepartureCode;references:Code"`
	Arrival   *AirportModel `json:"arrival,omitempty"   gorm:"foreignKey:ArrivalCode;references:Code"`
	Airline   *AirlineModel `json:"airline,omitempty"   gorm:"foreignKey:AirlineCode;references:Code"`

	Tags []FlightTagModel `json:"-" gorm:"foreignKey:FlightID;constraint:OnDelete:CASCADE"`
}

func (FlightModel) TableName() string { return "flights" }

// TagNames flattens the owned tag rows into plain strings.
func (f FlightModel) TagNames() StringArray {
	names := make(StringArray, len(f.Tags))
	for i, t := range f.Tags {
		names[i] = t.Name
	}
	return names
}

// FlightTagModel is a free-text tag fully owned by its flight.
// Composite key: there is no standalone tag entity.
type FlightTagModel struct {
	FlightID string `json:"-"    gorm:"type:char(36);primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(64);primaryKey"`
}

func (FlightTagModel) TableName() string { return "flight_tags" }
