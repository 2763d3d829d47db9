package stats

import (
	"testing"
	"time"

	"github.com/flightfolio/core/internal/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func statsFixture() []models.FlightModel {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []models.FlightModel{
		{
			DepartureCode: "SEA", ArrivalCode: "LAX", AirlineCode: strPtr("AS"),
			FlightDate: date("2024-06-01"), DistanceMiles: 955.1, CarbonFootprintKg: 455.61,
			DurationHours: f64Ptr(1.9), TripCost: f64Ptr(120), TripCostCurrency: "USD",
		},
		{
			DepartureCode: "LAX", ArrivalCode: "SEA", AirlineCode: strPtr("AS"),
			FlightDate: date("2024-06-10"), DistanceMiles: 955.1, CarbonFootprintKg: 455.61,
			DurationHours: f64Ptr(1.9), TripCost: f64Ptr(130), TripCostCurrency: "USD",
			CarbonOffset: true,
		},
		{
			DepartureCode: "SEA", ArrivalCode: "ANC", AirlineCode: strPtr("DL"),
			FlightDate: date("2025-03-02"), DistanceMiles: 1445.0, CarbonFootprintKg: 689.3,
			DurationHours: f64Ptr(2.9), TripCost: f64Ptr(200), TripCostCurrency: "EUR",
		},
	}
}

func TestBuildTotals(t *testing.T) {
	s := Build(statsFixture())

	if s.Totals.Flights != 3 {
		t.Errorf("flights = %d", s.Totals.Flights)
	}
	if s.Totals.DistanceMiles != 3355.2 {
		t.Errorf("distance = %f", s.Totals.DistanceMiles)
	}
	if s.Totals.DurationHours != 6.7 {
		t.Errorf("duration = %f", s.Totals.DurationHours)
	}
	if s.Totals.CarbonFootprintKg != 1600.52 {
		t.Errorf("carbon = %f", s.Totals.CarbonFootprintKg)
	}
	if s.Totals.OffsetFlights != 1 || s.Totals.CarbonOffsetKg != 455.61 {
		t.Errorf("offset: %d flights, %f kg", s.Totals.OffsetFlights, s.Totals.CarbonOffsetKg)
	}
	if s.Totals.UniqueAirports != 3 {
		t.Errorf("unique airports = %d", s.Totals.UniqueAirports)
	}
	if s.Totals.UniqueAirlines != 2 {
		t.Errorf("unique airlines = %d", s.Totals.UniqueAirlines)
	}
}

func TestBuildCostByCurrency(t *testing.T) {
	s := Build(statsFixture())
	if s.CostTotal["USD"] != 250 {
		t.Errorf("USD total = %f", s.CostTotal["USD"])
	}
	if s.CostTotal["EUR"] != 200 {
		t.Errorf("EUR total = %f", s.CostTotal["EUR"])
	}
}

func TestBuildTopEntries(t *testing.T) {
	s := Build(statsFixture())

	if len(s.Airports) == 0 || s.Airports[0].Key != "SEA" || s.Airports[0].Count != 3 {
		t.Errorf("top airport = %+v", s.Airports)
	}
	if len(s.Airlines) == 0 || s.Airlines[0].Key != "AS" || s.Airlines[0].Count != 2 {
		t.Errorf("top airline = %+v", s.Airlines)
	}
	// SEA-LAX and LAX-SEA collapse to one direction-agnostic route.
	if len(s.Routes) == 0 || s.Routes[0].Key != "LAX-SEA" || s.Routes[0].Count != 2 {
		t.Errorf("top route = %+v", s.Routes)
	}
}

func TestBuildPerYear(t *testing.T) {
	s := Build(statsFixture())

	if len(s.PerYear) != 2 {
		t.Fatalf("per-year buckets = %d", len(s.PerYear))
	}
	if s.PerYear[0].Year != 2024 || s.PerYear[0].Flights != 2 {
		t.Errorf("2024 bucket = %+v", s.PerYear[0])
	}
	if s.PerYear[1].Year != 2025 || s.PerYear[1].Flights != 1 {
		t.Errorf("2025 bucket = %+v", s.PerYear[1])
	}
}

func TestBuildEmpty(t *testing.T) {
	s := Build(nil)
	if s.Totals.Flights != 0 || len(s.Airports) != 0 || len(s.PerYear) != 0 {
		t.Errorf("empty build not empty: %+v", s)
	}
}
