package importer

import (
	"testing"

	appcfg "github.com/flightfolio/core/internal/config"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Flight Date", "flightdate"},
		{" Departure_Code ", "departurecode"},
		{"aircraft-type", "aircrafttype"},
		{"TAGS", "tags"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeHeader(tt.in); got != tt.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapColumnsHeuristicSynonyms(t *testing.T) {
	headers := []string{"From", "To", "Carrier", "Flight Date", "Flight No", "Equipment", "Price", "Notes"}
	mapping := mapColumnsHeuristic(headers)

	want := map[int]string{
		0: "departure_code",
		1: "arrival_code",
		2: "airline_code",
		3: "flight_date",
		4: "flight_number",
		5: "aircraft_type",
		6: "trip_cost",
		7: "journal",
	}
	if len(mapping) != len(want) {
		t.Fatalf("mapping = %v, want %v", mapping, want)
	}
	for idx, field := range want {
		if mapping[idx] != field {
			t.Errorf("column %d mapped to %q, want %q", idx, mapping[idx], field)
		}
	}
}

func TestMapColumnsHeuristicCanonicalPassthrough(t *testing.T) {
	mapping := mapColumnsHeuristic([]string{"departure_code", "arrival_code", "flight_date"})
	if mapping[0] != "departure_code" || mapping[1] != "arrival_code" || mapping[2] != "flight_date" {
		t.Errorf("canonical headers should map to themselves: %v", mapping)
	}
}

func TestMapColumnsHeuristicFirstColumnWins(t *testing.T) {
	// Two columns resolving to the same field: only the first one maps.
	mapping := mapColumnsHeuristic([]string{"From", "Origin", "To"})
	if mapping[0] != "departure_code" {
		t.Errorf("first departure column lost: %v", mapping)
	}
	if _, ok := mapping[1]; ok {
		t.Errorf("duplicate departure column should be skipped: %v", mapping)
	}
	if mapping[2] != "arrival_code" {
		t.Errorf("arrival column lost: %v", mapping)
	}
}

func TestMapColumnsHeuristicUnknownHeaderSkipped(t *testing.T) {
	mapping := mapColumnsHeuristic([]string{"From", "Seat Preference", "To"})
	if _, ok := mapping[1]; ok {
		t.Errorf("unknown header should stay unmapped: %v", mapping)
	}
}

func TestMapColumnsWithoutAssistStaysHeuristic(t *testing.T) {
	headers := []string{"From", "Mystery Column", "To", "Date"}
	mapping := MapColumns(appcfg.AIConfig{EnableImportAssist: false}, headers)

	if mapping[0] != "departure_code" || mapping[2] != "arrival_code" || mapping[3] != "flight_date" {
		t.Errorf("heuristic results missing: %v", mapping)
	}
	if _, ok := mapping[1]; ok {
		t.Errorf("assist disabled, unmapped header must stay unmapped: %v", mapping)
	}
}

func TestMapColumnsAssistWithoutProviderFallsBack(t *testing.T) {
	// Assist enabled but no provider configured: same outcome as heuristic-only.
	headers := []string{"From", "Mystery Column", "To", "Date"}
	mapping := MapColumns(appcfg.AIConfig{EnableImportAssist: true}, headers)

	if len(mapping) != 3 {
		t.Errorf("expected 3 heuristic mappings, got %v", mapping)
	}
}

func TestUnmappedHeaders(t *testing.T) {
	headers := []string{"From", "Mystery", "To", "  ", "Другое"}
	mapping := mapColumnsHeuristic(headers)

	got := unmappedHeaders(headers, mapping)
	if len(got) != 2 || got[0] != "Mystery" || got[1] != "Другое" {
		t.Errorf("unmappedHeaders = %v", got)
	}
}

func TestUnmarshalAIJSONCodeFence(t *testing.T) {
	raw := "```json\n{\"Mystery\": \"journal\"}\n```"
	var m map[string]string
	if err := unmarshalAIJSON(raw, &m); err != nil {
		t.Fatalf("fenced JSON: %v", err)
	}
	if m["Mystery"] != "journal" {
		t.Errorf("parsed mapping = %v", m)
	}

	if err := unmarshalAIJSON("not json at all", &m); err == nil {
		t.Error("garbage input should fail")
	}
}
