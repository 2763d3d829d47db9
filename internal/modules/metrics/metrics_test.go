package metrics

import (
	"math"
	"testing"
)

func TestEstimateDurationHours(t *testing.T) {
	tests := []struct {
		miles float64
		want  float64
	}{
		{0, 0},
		{-10, 0},
		{500, 1.0},
		{954, 1.9},
		{1234, 2.5},
		{1445, 2.9},
	}
	for _, tt := range tests {
		if got := EstimateDurationHours(tt.miles); got != tt.want {
			t.Errorf("EstimateDurationHours(%f) = %f, want %f", tt.miles, got, tt.want)
		}
	}
}

func TestCarbonFootprintKgZeroForNonPositiveDistance(t *testing.T) {
	if got := CarbonFootprintKg(0, "Boeing 737"); got != 0 {
		t.Errorf("zero distance: got %f", got)
	}
	if got := CarbonFootprintKg(-100, ""); got != 0 {
		t.Errorf("negative distance: got %f", got)
	}
}

func TestCarbonFootprintKgTierBoundaries(t *testing.T) {
	// 310 mi ≈ 498.9 km (short tier), 311 mi ≈ 500.5 km (medium tier).
	// The short-haul factor makes the shorter flight dirtier in absolute terms.
	if got := CarbonFootprintKg(310, ""); got != 241.71 {
		t.Errorf("below 500km: got %f, want 241.71", got)
	}
	if got := CarbonFootprintKg(311, ""); got != 148.35 {
		t.Errorf("above 500km: got %f, want 148.35", got)
	}

	// 1863 mi ≈ 2998.2 km (medium), 1865 mi ≈ 3001.4 km (long).
	if got := CarbonFootprintKg(1863, ""); got != 888.67 {
		t.Errorf("below 3000km: got %f, want 888.67", got)
	}
	if got := CarbonFootprintKg(1865, ""); got != 792.67 {
		t.Errorf("above 3000km: got %f, want 792.67", got)
	}
}

func TestCarbonFootprintKgAircraftMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		aircraft string
		want     float64
	}{
		{"baseline", "", 477.01},
		{"unknown type", "Boeing 737-800", 477.01},
		{"efficient 787", "Boeing 787-9", 405.46},
		{"efficient a350 lowercase", "airbus a350-900", 405.46},
		{"inefficient 747", "Boeing 747-400", 548.56},
		{"inefficient A380 uppercase", "AIRBUS A380", 548.56},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CarbonFootprintKg(1000, tt.aircraft); got != tt.want {
				t.Errorf("CarbonFootprintKg(1000, %q) = %f, want %f", tt.aircraft, got, tt.want)
			}
		})
	}
}

func TestCarbonFootprintKgMonotonicWithinTier(t *testing.T) {
	// Inside a single tier, more distance always means more carbon.
	prev := 0.0
	for miles := 400.0; miles <= 1800.0; miles += 100 {
		got := CarbonFootprintKg(miles, "")
		if got <= prev {
			t.Fatalf("carbon not increasing at %f miles: %f <= %f", miles, got, prev)
		}
		prev = got
	}
}

func TestCarbonFootprintKgSeattleAnchorage(t *testing.T) {
	// 1445 miles ≈ the SEA-ANC great-circle distance.
	got := CarbonFootprintKg(1445.0459040386504, "Boeing 737-800")
	if math.Abs(got-689.3) > 0.01 {
		t.Errorf("SEA-ANC carbon = %f, want ≈689.30", got)
	}
}
