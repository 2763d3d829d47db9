// Package metrics is the single home of every derived flight metric.
// Manual entry, spreadsheet import, and demo seeding must all call these
// functions; do not copy the formulas anywhere else.
package metrics

import (
	"math"
	"strings"
)

const (
	// AverageCruiseSpeedMph feeds the duration estimate.
	AverageCruiseSpeedMph = 500.0

	milesToKm = 1.60934

	// Emission factors in kg CO2 per passenger-km, tiered by sector length.
	// Short sectors burn disproportionate fuel in climb-out.
	factorShortKgPerKm  = 0.255 // < 500 km
	factorMediumKgPerKm = 0.156 // < 3000 km
	factorLongKgPerKm   = 0.139

	shortTierKm  = 500.0
	mediumTierKm = 3000.0

	// radiativeForcingIndex accounts for non-CO2 high-altitude climate
	// effects (contrails, NOx).
	radiativeForcingIndex = 1.9
)

// aircraftEfficiency maps airframe-name fragments to an emissions multiplier.
// Matched case-insensitively against the free-text aircraft type.
var aircraftEfficiency = []struct {
	fragment   string
	multiplier float64
}{
	{"787", 0.85},
	{"a350", 0.85},
	{"747", 1.15},
	{"a380", 1.15},
}

// EstimateDurationHours estimates flight time from distance at the average
// cruise speed, rounded to one decimal. Returns 0 for non-positive distance.
func EstimateDurationHours(distanceMiles float64) float64 {
	if distanceMiles <= 0 {
		return 0
	}
	return math.Round(distanceMiles/AverageCruiseSpeedMph*10) / 10
}

// CarbonFootprintKg estimates the per-passenger carbon footprint of a flight.
//
// distance miles → km, a tiered base factor by sector length, an aircraft
// efficiency multiplier, and the fixed radiative-forcing multiplier.
// Returns 0 for non-positive distance. Rounded to two decimals.
func CarbonFootprintKg(distanceMiles float64, aircraftType string) float64 {
	if distanceMiles <= 0 {
		return 0
	}

	distanceKm := distanceMiles * milesToKm

	factor := factorLongKgPerKm
	switch {
	case distanceKm < shortTierKm:
		factor = factorShortKgPerKm
	case distanceKm < mediumTierKm:
		factor = factorMediumKgPerKm
	}

	factor *= efficiencyMultiplier(aircraftType)

	kg := distanceKm * factor * radiativeForcingIndex
	return math.Round(kg*100) / 100
}

func efficiencyMultiplier(aircraftType string) float64 {
	if aircraftType == "" {
		return 1.0
	}
	needle := strings.ToLower(aircraftType)
	for _, e := range aircraftEfficiency {
		if strings.Contains(needle, e.fragment) {
			return e.multiplier
		}
	}
	return 1.0
}
