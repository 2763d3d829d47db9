package geo

import (
	"math"
	"testing"
)

func TestDistanceMilesZeroForSamePoint(t *testing.T) {
	if d := DistanceMiles(47.4502, -122.3088, 47.4502, -122.3088); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceMilesSymmetry(t *testing.T) {
	a := DistanceMiles(47.4502, -122.3088, 33.9416, -118.4085)
	b := DistanceMiles(33.9416, -118.4085, 47.4502, -122.3088)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestDistanceMilesKnownRoutes(t *testing.T) {
	tests := []struct {
		name                       string
		lat1, lon1, lat2, lon2     float64
		want                       float64
	}{
		{"SEA-LAX", 47.4502, -122.3088, 33.9416, -118.4085, 955.1},
		{"SEA-ANC", 47.4502, -122.3088, 61.1743, -149.9962, 1445.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.want*0.02 {
				t.Errorf("got %f, want %f ±2%%", got, tt.want)
			}
		})
	}
}

func TestDistanceMilesAntipodal(t *testing.T) {
	got := DistanceMiles(0, 0, 0, 180)
	want := math.Pi * EarthRadiusMiles
	if math.Abs(got-want) > 1 {
		t.Fatalf("antipodal distance %f, want %f", got, want)
	}
}
