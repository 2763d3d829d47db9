// Package stats aggregates a user's filtered flights into dashboard numbers.
package stats

import (
	"math"
	"sort"

	"github.com/flightfolio/core/internal/models"
)

const topN = 10

// Summary is the dashboard aggregate for one filter state.
type Summary struct {
	Totals    Totals             `json:"totals"`
	Airports  []CountEntry       `json:"top_airports"`
	Airlines  []CountEntry       `json:"top_airlines"`
	Routes    []CountEntry       `json:"top_routes"`
	PerYear   []YearEntry        `json:"per_year"`
	CostTotal map[string]float64 `json:"cost_by_currency"`
}

type Totals struct {
	Flights           int     `json:"flights"`
	DistanceMiles     float64 `json:"distance_miles"`
	DurationHours     float64 `json:"duration_hours"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
	CarbonOffsetKg    float64 `json:"carbon_offset_kg"`
	OffsetFlights     int     `json:"offset_flights"`
	UniqueAirports    int     `json:"unique_airports"`
	UniqueAirlines    int     `json:"unique_airlines"`
}

type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type YearEntry struct {
	Year    int     `json:"year"`
	Flights int     `json:"flights"`
	Miles   float64 `json:"distance_miles"`
}

// Build computes the summary from already-filtered flights.
func Build(list []models.FlightModel) Summary {
	s := Summary{CostTotal: map[string]float64{}}
	airports := map[string]int{}
	airlines := map[string]int{}
	routes := map[string]int{}
	years := map[int]*YearEntry{}

	for i := range list {
		f := &list[i]
		s.Totals.Flights++
		s.Totals.DistanceMiles += f.DistanceMiles
		s.Totals.CarbonFootprintKg += f.CarbonFootprintKg
		if f.DurationHours != nil {
			s.Totals.DurationHours += *f.DurationHours
		}
		if f.CarbonOffset {
			s.Totals.OffsetFlights++
			s.Totals.CarbonOffsetKg += f.CarbonFootprintKg
		}
		if f.TripCost != nil {
			currency := f.TripCostCurrency
			if currency == "" {
				currency = "USD"
			}
			s.CostTotal[currency] += *f.TripCost
		}

		airports[f.DepartureCode]++
		airports[f.ArrivalCode]++
		if f.AirlineCode != nil {
			airlines[*f.AirlineCode]++
		}
		routes[routeKey(f.DepartureCode, f.ArrivalCode)]++

		year := f.FlightDate.Year()
		entry, ok := years[year]
		if !ok {
			entry = &YearEntry{Year: year}
			years[year] = entry
		}
		entry.Flights++
		entry.Miles += f.DistanceMiles
	}

	s.Totals.DistanceMiles = round1(s.Totals.DistanceMiles)
	s.Totals.DurationHours = round1(s.Totals.DurationHours)
	s.Totals.CarbonFootprintKg = round2(s.Totals.CarbonFootprintKg)
	s.Totals.CarbonOffsetKg = round2(s.Totals.CarbonOffsetKg)
	s.Totals.UniqueAirports = len(airports)
	s.Totals.UniqueAirlines = len(airlines)

	s.Airports = topEntries(airports)
	s.Airlines = topEntries(airlines)
	s.Routes = topEntries(routes)

	for _, entry := range years {
		entry.Miles = round1(entry.Miles)
		s.PerYear = append(s.PerYear, *entry)
	}
	sort.Slice(s.PerYear, func(i, j int) bool { return s.PerYear[i].Year < s.PerYear[j].Year })

	return s
}

// routeKey is direction-agnostic: SEA-LAX and LAX-SEA count as one route.
func routeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

func topEntries(counts map[string]int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, CountEntry{Key: k, Count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
