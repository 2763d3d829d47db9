package airports

// ImportAirportDTO is one row of a bulk airport upsert.
type ImportAirportDTO struct {
	Code        string   `json:"code"    binding:"required"`
	Name        string   `json:"name"    binding:"required"`
	City        string   `json:"city"`
	CountryCode string   `json:"country_code"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// ImportAirportsDTO wraps the bulk payload.
type ImportAirportsDTO struct {
	Airports []ImportAirportDTO `json:"airports" binding:"required"`
}

// coordinatesResponse is returned by GET /airports/:code/coordinates.
type coordinatesResponse struct {
	Code        string     `json:"code"`
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
	Resolved    bool       `json:"resolved"`    // false = hash fallback
}
