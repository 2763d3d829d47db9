package flights

import (
	"strings"
	"time"

	"github.com/flightfolio/core/internal/models"
	"github.com/gin-gonic/gin"
)

// FilterState is a conjunctive predicate over flights. Every set dimension
// must match; an unset dimension passes everything. A single airport filter
// matches either end of the route.
type FilterState struct {
	AirportCode  string
	AirlineCode  string
	AircraftType string
	DateFrom     *time.Time
	DateTo       *time.Time
	SearchText   string
	Tags         []string
}

// FilterFromContext parses the filter dimensions from query parameters.
func FilterFromContext(c *gin.Context) FilterState {
	fs := FilterState{
		AirportCode:  strings.ToUpper(strings.TrimSpace(c.Query("airport"))),
		AirlineCode:  strings.ToUpper(strings.TrimSpace(c.Query("airline"))),
		AircraftType: strings.TrimSpace(c.Query("aircraft")),
		SearchText:   strings.TrimSpace(c.Query("search")),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fs.DateFrom = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			fs.DateTo = &t
		}
	}
	for _, tag := range c.QueryArray("tag") {
		if tag = strings.TrimSpace(tag); tag != "" {
			fs.Tags = append(fs.Tags, tag)
		}
	}
	return fs
}

// IsZero reports whether no dimension is set.
func (fs FilterState) IsZero() bool {
	return fs.AirportCode == "" && fs.AirlineCode == "" && fs.AircraftType == "" &&
		fs.DateFrom == nil && fs.DateTo == nil && fs.SearchText == "" && len(fs.Tags) == 0
}

// Matches evaluates the predicate against a single flight.
func (fs FilterState) Matches(f *models.FlightModel) bool {
	if fs.AirportCode != "" &&
		f.DepartureCode != fs.AirportCode && f.ArrivalCode != fs.AirportCode {
		return false
	}
	if fs.AirlineCode != "" {
		if f.AirlineCode == nil || *f.AirlineCode != fs.AirlineCode {
			return false
		}
	}
	if fs.AircraftType != "" && !containsFold(f.AircraftType, fs.AircraftType) {
		return false
	}
	if fs.DateFrom != nil && f.FlightDate.Before(*fs.DateFrom) {
		return false
	}
	if fs.DateTo != nil && f.FlightDate.After(fs.DateTo.Add(24*time.Hour-time.Nanosecond)) {
		return false
	}
	if fs.SearchText != "" && !fs.matchesText(f) {
		return false
	}
	for _, want := range fs.Tags {
		if !hasTag(f, want) {
			return false
		}
	}
	return true
}

func (fs FilterState) matchesText(f *models.FlightModel) bool {
	fields := []string{
		f.DepartureCode, f.ArrivalCode,
		f.FlightNumber, f.AircraftType, f.Journal,
	}
	if f.AirlineCode != nil {
		fields = append(fields, *f.AirlineCode)
	}
	if f.Departure != nil {
		fields = append(fields, f.Departure.Name, f.Departure.City)
	}
	if f.Arrival != nil {
		fields = append(fields, f.Arrival.Name, f.Arrival.City)
	}
	if f.Airline != nil {
		fields = append(fields, f.Airline.Name)
	}
	for _, v := range fields {
		if containsFold(v, fs.SearchText) {
			return true
		}
	}
	return false
}

func hasTag(f *models.FlightModel, want string) bool {
	for _, t := range f.Tags {
		if strings.EqualFold(t.Name, want) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
