package routemap

import "time"

// FallbackRouteColor is used when a flight has no airline or the airline
// carries no usable brand color.
const FallbackRouteColor = "#FF6464"

// RouteTooltip is the hover payload attached to each route feature.
type RouteTooltip struct {
	Departure         string    `json:"departure"`
	Arrival           string    `json:"arrival"`
	AirlineCode       string    `json:"airline_code,omitempty"`
	AirlineName       string    `json:"airline_name,omitempty"`
	FlightNumber      string    `json:"flight_number,omitempty"`
	FlightDate        time.Time `json:"flight_date"`
	DistanceMiles     float64   `json:"distance_miles"`
	CarbonFootprintKg float64   `json:"carbon_footprint_kg"`
}

// RouteFeature is one renderable flight route: an arc of [lon, lat] points
// plus its stroke color and tooltip.
type RouteFeature struct {
	FlightID string       `json:"flight_id"`
	Path     [][2]float64 `json:"path"`
	Color    string       `json:"color"`
	Tooltip  RouteTooltip `json:"tooltip"`
}

// AirportMarker is a deduplicated airport dot. Resolved is false when the
// position is a hash-derived fallback rather than a stored coordinate.
type AirportMarker struct {
	Code        string     `json:"code"`
	Coordinates [2]float64 `json:"coordinates"`
	Resolved    bool       `json:"resolved"`
	FlightCount int        `json:"flight_count"`
}

// HeatPoint carries the heatmap weight for one airport position.
type HeatPoint struct {
	Coordinates [2]float64 `json:"coordinates"`
	Weight      float64    `json:"weight"`
}

// Snapshot is the full render model for one filter state. It contains no
// timestamps: the same flights and options always produce the same snapshot.
type Snapshot struct {
	Features []RouteFeature  `json:"features"`
	Markers  []AirportMarker `json:"markers"`
	Heatmap  []HeatPoint     `json:"heatmap"`
}
