// Package seed loads a small demo dataset so a fresh install has something
// to render. All flights go through the regular create path, so distances
// and carbon figures are derived the same way user input is.
package seed

import (
	"github.com/flightfolio/core/internal/modules/airlines"
	"github.com/flightfolio/core/internal/modules/airports"
	"github.com/flightfolio/core/internal/modules/flights"
)

type Service struct {
	airports *airports.Service
	airlines *airlines.Service
	flights  *flights.Service
}

func NewService(airportSvc *airports.Service, airlineSvc *airlines.Service, flightSvc *flights.Service) *Service {
	return &Service{airports: airportSvc, airlines: airlineSvc, flights: flightSvc}
}

// Result reports what the demo load created.
type Result struct {
	Airports int `json:"airports"`
	Airlines int `json:"airlines"`
	Flights  int `json:"flights"`
}

// LoadDemo seeds airports, airlines and flights for the given user.
func (s *Service) LoadDemo(userID string) (*Result, error) {
	res := &Result{}

	n, err := s.airports.Upsert(demoAirports)
	if err != nil {
		return nil, err
	}
	res.Airports = n

	m, err := s.airlines.Import(demoAirlines)
	if err != nil {
		return nil, err
	}
	res.Airlines = m

	for i := range demoFlights {
		if _, err := s.flights.Create(userID, &demoFlights[i]); err != nil {
			return nil, err
		}
		res.Flights++
	}
	return res, nil
}

func ptr[T any](v T) *T { return &v }

var demoAirports = []airports.ImportAirportDTO{
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", CountryCode: "US", Latitude: ptr(47.4502), Longitude: ptr(-122.3088)},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", CountryCode: "US", Latitude: ptr(33.9416), Longitude: ptr(-118.4085)},
	{Code: "ANC", Name: "Ted Stevens Anchorage International", City: "Anchorage", CountryCode: "US", Latitude: ptr(61.1743), Longitude: ptr(-149.9962)},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", CountryCode: "US", Latitude: ptr(37.6213), Longitude: ptr(-122.3790)},
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", CountryCode: "US", Latitude: ptr(40.6413), Longitude: ptr(-73.7781)},
	{Code: "LHR", Name: "London Heathrow", City: "London", CountryCode: "GB", Latitude: ptr(51.4700), Longitude: ptr(-0.4543)},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", CountryCode: "JP", Latitude: ptr(35.7720), Longitude: ptr(140.3929)},
	{Code: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", CountryCode: "NL", Latitude: ptr(52.3105), Longitude: ptr(4.7683)},
}

var demoAirlines = []airlines.ImportAirlineDTO{
	{Code: "AS", Name: "Alaska Airlines"},
	{Code: "DL", Name: "Delta Air Lines"},
	{Code: "UA", Name: "United Airlines"},
	{Code: "BA", Name: "British Airways"},
	{Code: "NH", Name: "All Nippon Airways"},
}

var demoFlights = []flights.CreateFlightDTO{
	{DepartureCode: "SEA", ArrivalCode: "LAX", AirlineCode: ptr("AS"), FlightDate: "2025-01-12", FlightNumber: "AS1012", AircraftType: "Boeing 737-900", Tags: []string{"work"}},
	{DepartureCode: "LAX", ArrivalCode: "SEA", AirlineCode: ptr("AS"), FlightDate: "2025-01-16", FlightNumber: "AS1021", AircraftType: "Boeing 737-900", Tags: []string{"work"}},
	{DepartureCode: "SEA", ArrivalCode: "ANC", AirlineCode: ptr("AS"), FlightDate: "2025-03-02", FlightNumber: "AS141", AircraftType: "Boeing 737-800", Tags: []string{"vacation"}},
	{DepartureCode: "SEA", ArrivalCode: "JFK", AirlineCode: ptr("DL"), FlightDate: "2025-04-22", FlightNumber: "DL438", AircraftType: "Airbus A330-900"},
	{DepartureCode: "JFK", ArrivalCode: "LHR", AirlineCode: ptr("BA"), FlightDate: "2025-04-25", FlightNumber: "BA112", AircraftType: "Boeing 787-9", Tags: []string{"vacation", "long-haul"}},
	{DepartureCode: "LHR", ArrivalCode: "AMS", AirlineCode: ptr("BA"), FlightDate: "2025-05-01", FlightNumber: "BA430", AircraftType: "Airbus A320"},
	{DepartureCode: "AMS", ArrivalCode: "SEA", AirlineCode: ptr("DL"), FlightDate: "2025-05-08", FlightNumber: "DL143", AircraftType: "Airbus A350-900", Tags: []string{"long-haul"}},
	{DepartureCode: "SEA", ArrivalCode: "NRT", AirlineCode: ptr("NH"), FlightDate: "2025-07-14", FlightNumber: "NH177", AircraftType: "Boeing 787-10", Tags: []string{"vacation", "long-haul"}},
	{DepartureCode: "NRT", ArrivalCode: "SFO", AirlineCode: ptr("UA"), FlightDate: "2025-07-28", FlightNumber: "UA838", AircraftType: "Boeing 777-300ER"},
	{DepartureCode: "SFO", ArrivalCode: "SEA", AirlineCode: ptr("UA"), FlightDate: "2025-07-29", FlightNumber: "UA1742", AircraftType: "Boeing 737 MAX 9"},
}
