package flights

import (
	"testing"
	"time"

	"github.com/flightfolio/core/internal/models"
)

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleFlight() *models.FlightModel {
	return &models.FlightModel{
		DepartureCode: "SEA",
		ArrivalCode:   "ANC",
		AirlineCode:   strPtr("AS"),
		FlightDate:    date("2025-03-02"),
		FlightNumber:  "AS141",
		AircraftType:  "Boeing 737-800",
		Journal:       "Mountains the whole way up.",
		Tags: []models.FlightTagModel{
			{Name: "vacation"},
			{Name: "window-seat"},
		},
		Departure: &models.AirportModel{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle"},
		Arrival:   &models.AirportModel{Code: "ANC", Name: "Ted Stevens Anchorage International", City: "Anchorage"},
		Airline:   &models.AirlineModel{Code: "AS", Name: "Alaska Airlines"},
	}
}

func TestFilterZeroMatchesEverything(t *testing.T) {
	fs := FilterState{}
	if !fs.IsZero() {
		t.Fatal("empty filter should be zero")
	}
	if !fs.Matches(sampleFlight()) {
		t.Error("zero filter must match any flight")
	}
}

func TestFilterAirportMatchesEitherEnd(t *testing.T) {
	f := sampleFlight()

	if !(FilterState{AirportCode: "SEA"}).Matches(f) {
		t.Error("departure airport should match")
	}
	if !(FilterState{AirportCode: "ANC"}).Matches(f) {
		t.Error("arrival airport should match")
	}
	if (FilterState{AirportCode: "LAX"}).Matches(f) {
		t.Error("unrelated airport should not match")
	}
}

func TestFilterAirlineExact(t *testing.T) {
	f := sampleFlight()

	if !(FilterState{AirlineCode: "AS"}).Matches(f) {
		t.Error("airline should match")
	}
	if (FilterState{AirlineCode: "DL"}).Matches(f) {
		t.Error("wrong airline should not match")
	}

	f.AirlineCode = nil
	if (FilterState{AirlineCode: "AS"}).Matches(f) {
		t.Error("flight without airline should not match an airline filter")
	}
}

func TestFilterAircraftSubstring(t *testing.T) {
	f := sampleFlight()

	tests := []struct {
		query string
		want  bool
	}{
		{"737", true},
		{"boeing", true},
		{"BOEING 737", true},
		{"787", false},
		{"airbus", false},
	}
	for _, tt := range tests {
		if got := (FilterState{AircraftType: tt.query}).Matches(f); got != tt.want {
			t.Errorf("aircraft query %q: got %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterDateRangeInclusive(t *testing.T) {
	f := sampleFlight() // flies 2025-03-02

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"inside range", "2025-03-01", "2025-03-03", true},
		{"from on flight day", "2025-03-02", "2025-03-03", true},
		{"to on flight day", "2025-02-01", "2025-03-02", true},
		{"before range", "2025-03-03", "2025-03-10", false},
		{"after range", "2025-01-01", "2025-03-01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := date(tt.from), date(tt.to)
			fs := FilterState{DateFrom: &from, DateTo: &to}
			if got := fs.Matches(f); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterFreeTextCaseInsensitive(t *testing.T) {
	f := sampleFlight()

	for _, q := range []string{"seattle", "SEATTLE", "alaska", "mountains", "as141", "anchorage"} {
		if !(FilterState{SearchText: q}).Matches(f) {
			t.Errorf("search %q should match", q)
		}
	}
	if (FilterState{SearchText: "hawaii"}).Matches(f) {
		t.Error("unrelated search should not match")
	}
}

func TestFilterTagContainment(t *testing.T) {
	f := sampleFlight()

	if !(FilterState{Tags: []string{"vacation"}}).Matches(f) {
		t.Error("single tag should match")
	}
	if !(FilterState{Tags: []string{"Vacation", "WINDOW-SEAT"}}).Matches(f) {
		t.Error("tag match should be case-insensitive and conjunctive")
	}
	if (FilterState{Tags: []string{"vacation", "work"}}).Matches(f) {
		t.Error("all requested tags must be present")
	}
}

func TestFilterDimensionsAreConjunctive(t *testing.T) {
	f := sampleFlight()

	match := FilterState{AirportCode: "SEA", AirlineCode: "AS", AircraftType: "737"}
	if !match.Matches(f) {
		t.Error("all-matching dimensions should pass")
	}

	oneOff := FilterState{AirportCode: "SEA", AirlineCode: "DL"}
	if oneOff.Matches(f) {
		t.Error("one failing dimension must fail the whole predicate")
	}
}

func TestDedupeTags(t *testing.T) {
	got := dedupeTags([]string{"work", "Work", " work ", "", "vacation"})
	if len(got) != 2 || got[0] != "work" || got[1] != "vacation" {
		t.Errorf("dedupeTags = %v", got)
	}
}
