package flights

import "time"

// CreateFlightDTO logs a new flight. Distance and carbon are always derived
// server-side; duration is estimated when absent.
type CreateFlightDTO struct {
	DepartureCode string  `json:"departure_code" binding:"required"`
	ArrivalCode   string  `json:"arrival_code"   binding:"required"`
	AirlineCode   *string `json:"airline_code"`

	FlightDate    string   `json:"flight_date" binding:"required"` // YYYY-MM-DD
	FlightNumber  string   `json:"flight_number"`
	AircraftType  string   `json:"aircraft_type"`
	DurationHours *float64 `json:"duration_hours"`

	TripCost         *float64 `json:"trip_cost"`
	TripCostCurrency string   `json:"trip_cost_currency"`

	Journal string   `json:"journal"`
	Tags    []string `json:"tags"`
}

// UpdateFlightDTO patches an existing flight; nil fields are untouched.
type UpdateFlightDTO struct {
	DepartureCode *string `json:"departure_code"`
	ArrivalCode   *string `json:"arrival_code"`
	AirlineCode   *string `json:"airline_code"`

	FlightDate    *string  `json:"flight_date"`
	FlightNumber  *string  `json:"flight_number"`
	AircraftType  *string  `json:"aircraft_type"`
	DurationHours *float64 `json:"duration_hours"`

	TripCost         *float64 `json:"trip_cost"`
	TripCostCurrency *string  `json:"trip_cost_currency"`

	Journal *string   `json:"journal"`
	Tags    *[]string `json:"tags"`
}

// CarbonOffsetDTO toggles the offset state of a flight.
type CarbonOffsetDTO struct {
	Offset    bool   `json:"offset"`
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}

// FlightView is a flight enriched with its flattened tags.
type FlightView struct {
	ID                string     `json:"id"`
	DepartureCode     string     `json:"departure_code"`
	ArrivalCode       string     `json:"arrival_code"`
	AirlineCode       *string    `json:"airline_code"`
	FlightDate        time.Time  `json:"flight_date"`
	FlightNumber      string     `json:"flight_number"`
	AircraftType      string     `json:"aircraft_type"`
	DurationHours     *float64   `json:"duration_hours"`
	TripCost          *float64   `json:"trip_cost"`
	TripCostCurrency  string     `json:"trip_cost_currency"`
	DistanceMiles     float64    `json:"distance_miles"`
	CarbonFootprintKg float64    `json:"carbon_footprint_kg"`
	CarbonOffset      bool       `json:"carbon_offset"`
	CarbonOffsetDate  *time.Time `json:"carbon_offset_date"`
	Journal           string     `json:"journal"`
	Tags              []string   `json:"tags"`
	Created           time.Time  `json:"created"`
	Modified          time.Time  `json:"modified"`
}
