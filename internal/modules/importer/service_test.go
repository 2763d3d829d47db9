package importer

import (
	"testing"
)

func TestHasRequiredColumns(t *testing.T) {
	full := map[int]string{0: "departure_code", 1: "arrival_code", 2: "flight_date", 3: "journal"}
	if !hasRequiredColumns(full) {
		t.Error("departure+arrival+date should satisfy the requirement")
	}

	missing := map[int]string{0: "departure_code", 1: "arrival_code", 2: "journal"}
	if hasRequiredColumns(missing) {
		t.Error("mapping without a date column should not pass")
	}
}

func TestRowToDTO(t *testing.T) {
	mapping := map[int]string{
		0: "departure_code",
		1: "arrival_code",
		2: "flight_date",
		3: "airline_code",
		4: "duration_hours",
		5: "trip_cost",
		6: "tags",
	}
	record := []string{"SEA", "ANC", "03/02/2025", "AS", "3.4", "$210.50", "vacation; window-seat ;"}

	dto, err := rowToDTO(mapping, record)
	if err != nil {
		t.Fatalf("rowToDTO: %v", err)
	}
	if dto.DepartureCode != "SEA" || dto.ArrivalCode != "ANC" {
		t.Errorf("codes = %s/%s", dto.DepartureCode, dto.ArrivalCode)
	}
	if dto.FlightDate != "2025-03-02" {
		t.Errorf("date = %s, want normalized 2025-03-02", dto.FlightDate)
	}
	if dto.AirlineCode == nil || *dto.AirlineCode != "AS" {
		t.Errorf("airline = %v", dto.AirlineCode)
	}
	if dto.DurationHours == nil || *dto.DurationHours != 3.4 {
		t.Errorf("duration = %v", dto.DurationHours)
	}
	if dto.TripCost == nil || *dto.TripCost != 210.50 {
		t.Errorf("cost with currency sign = %v", dto.TripCost)
	}
	if len(dto.Tags) != 2 || dto.Tags[0] != "vacation" || dto.Tags[1] != "window-seat" {
		t.Errorf("tags = %v", dto.Tags)
	}
}

func TestRowToDTOShortRecord(t *testing.T) {
	mapping := map[int]string{0: "departure_code", 1: "arrival_code", 2: "flight_date", 9: "journal"}
	dto, err := rowToDTO(mapping, []string{"SEA", "ANC", "2025-03-02"})
	if err != nil {
		t.Fatalf("columns past the record end should be ignored: %v", err)
	}
	if dto.Journal != "" {
		t.Errorf("journal = %q", dto.Journal)
	}
}

func TestRowToDTOMissingRequired(t *testing.T) {
	mapping := map[int]string{0: "departure_code", 1: "arrival_code", 2: "flight_date"}

	if _, err := rowToDTO(mapping, []string{"", "ANC", "2025-03-02"}); err == nil {
		t.Error("blank departure should fail")
	}
	if _, err := rowToDTO(mapping, []string{"SEA", "ANC", ""}); err == nil {
		t.Error("blank date should fail")
	}
	if _, err := rowToDTO(mapping, []string{"SEA", "ANC", "someday"}); err == nil {
		t.Error("unparseable date should fail")
	}
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-02", "2025-03-02"},
		{"2025/03/02", "2025-03-02"},
		{"03/02/2025", "2025-03-02"},
		{"02.03.2025", "2025-03-02"},
		{"Mar 2, 2025", "2025-03-02"},
		{"2 Mar 2025", "2025-03-02"},
		{"2025-03-02T15:04:05Z", "2025-03-02"},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in)
		if err != nil {
			t.Errorf("parseDate(%q): %v", tt.in, err)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}

	if _, err := parseDate("next tuesday"); err == nil {
		t.Error("nonsense date should fail")
	}
}
