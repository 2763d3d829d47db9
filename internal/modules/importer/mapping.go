package importer

import (
	"fmt"
	"strings"

	appcfg "github.com/flightfolio/core/internal/config"
)

// canonicalFields are the flight fields an import column can map to.
var canonicalFields = []string{
	"departure_code", "arrival_code", "airline_code",
	"flight_date", "flight_number", "aircraft_type",
	"duration_hours", "trip_cost", "trip_cost_currency",
	"journal", "tags",
}

// headerSynonyms feed the heuristic mapper. Keys are normalized header
// names; values are canonical fields.
var headerSynonyms = map[string]string{
	"departure":      "departure_code",
	"departurecode":  "departure_code",
	"from":           "departure_code",
	"origin":         "departure_code",
	"dep":            "departure_code",
	"arrival":        "arrival_code",
	"arrivalcode":    "arrival_code",
	"to":             "arrival_code",
	"destination":    "arrival_code",
	"arr":            "arrival_code",
	"airline":        "airline_code",
	"airlinecode":    "airline_code",
	"carrier":        "airline_code",
	"date":           "flight_date",
	"flightdate":     "flight_date",
	"departuredate":  "flight_date",
	"flightnumber":   "flight_number",
	"flightno":       "flight_number",
	"flight":         "flight_number",
	"aircraft":       "aircraft_type",
	"aircrafttype":   "aircraft_type",
	"equipment":      "aircraft_type",
	"plane":          "aircraft_type",
	"duration":       "duration_hours",
	"durationhours":  "duration_hours",
	"hours":          "duration_hours",
	"cost":           "trip_cost",
	"tripcost":       "trip_cost",
	"price":          "trip_cost",
	"fare":           "trip_cost",
	"currency":       "trip_cost_currency",
	"costcurrency":   "trip_cost_currency",
	"notes":          "journal",
	"journal":        "journal",
	"comment":        "journal",
	"comments":       "journal",
	"tags":           "tags",
	"labels":         "tags",
}

// MapColumns resolves a CSV header row to canonical fields: the heuristic
// mapper runs first, and the AI mapper fills in headers it could not place
// when import assist is enabled.
func MapColumns(cfg appcfg.AIConfig, headers []string) map[int]string {
	mapping := mapColumnsHeuristic(headers)

	if !cfg.EnableImportAssist {
		return mapping
	}
	unmapped := unmappedHeaders(headers, mapping)
	if len(unmapped) == 0 {
		return mapping
	}

	provider := selectAIProvider(cfg, cfg.ColumnMappingModel)
	if provider == nil {
		return mapping
	}

	aiMapping, err := mapColumnsAI(provider, unmapped)
	if err != nil {
		return mapping
	}
	for idx, header := range headers {
		if _, done := mapping[idx]; done {
			continue
		}
		if field, ok := aiMapping[strings.TrimSpace(header)]; ok && isCanonicalField(field) {
			mapping[idx] = field
		}
	}
	return mapping
}

func mapColumnsHeuristic(headers []string) map[int]string {
	mapping := make(map[int]string, len(headers))
	used := map[string]bool{}

	for idx, header := range headers {
		key := normalizeHeader(header)
		field, ok := headerSynonyms[key]
		if !ok {
			if isCanonicalField(key) {
				field = key
			} else {
				continue
			}
		}
		if used[field] {
			continue
		}
		mapping[idx] = field
		used[field] = true
	}
	return mapping
}

func mapColumnsAI(provider *appcfg.AIProvider, headers []string) (map[string]string, error) {
	systemPrompt := "You map spreadsheet column headers to flight log fields. " +
		"Answer with a single JSON object and nothing else."
	prompt := fmt.Sprintf(
		"Map each of these CSV headers to one of the canonical fields, or omit the header if none fits.\n"+
			"Canonical fields: %s\n"+
			"Headers: %s\n"+
			`Respond as {"<header>": "<canonical_field>", ...}.`,
		strings.Join(canonicalFields, ", "),
		strings.Join(headers, ", "),
	)

	raw, err := callAI(provider, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var mapping map[string]string
	if err := unmarshalAIJSON(raw, &mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

func unmappedHeaders(headers []string, mapping map[int]string) []string {
	var out []string
	for idx, header := range headers {
		if _, ok := mapping[idx]; !ok && strings.TrimSpace(header) != "" {
			out = append(out, strings.TrimSpace(header))
		}
	}
	return out
}

func isCanonicalField(s string) bool {
	for _, f := range canonicalFields {
		if f == s {
			return true
		}
	}
	return false
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}
