package geo

import (
	"math"
	"testing"
)

func TestProjectCorners(t *testing.T) {
	p := NewProjection(2000, 1000)

	tests := []struct {
		name   string
		point  LonLat
		x, y   float64
	}{
		{"northwest", LonLat{-180, 90}, 0, 0},
		{"southeast", LonLat{180, -90}, 2000, 1000},
		{"origin", LonLat{0, 0}, 1000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.Project(tt.point)
			if x != tt.x || y != tt.y {
				t.Errorf("Project(%v) = (%f, %f), want (%f, %f)", tt.point, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestProjectUnprojectRoundtrip(t *testing.T) {
	p := NewProjection(2000, 1000)
	points := []LonLat{{-122.3088, 47.4502}, {140.3929, 35.7720}, {0, 0}, {-179.9, -89.9}}

	for _, pt := range points {
		x, y := p.Project(pt)
		back := p.Unproject(x, y)
		if math.Abs(back.Lon()-pt.Lon()) > 1e-9 || math.Abs(back.Lat()-pt.Lat()) > 1e-9 {
			t.Errorf("roundtrip %v -> %v", pt, back)
		}
	}
}

func TestGreatCirclePathShortRouteIsStraight(t *testing.T) {
	p := NewProjection(2000, 1000)
	// LHR-AMS is tiny in display space on a 2000-wide canvas.
	from := LonLat{-0.4543, 51.47}
	to := LonLat{4.7683, 52.3105}

	path := p.GreatCirclePath(from, to, 64, 80)
	if len(path) != 2 {
		t.Fatalf("short route should degrade to 2 points, got %d", len(path))
	}
	if path[0] != from || path[1] != to {
		t.Fatalf("short route endpoints changed: %v", path)
	}
}

func TestGreatCirclePathLongRoute(t *testing.T) {
	p := NewProjection(2000, 1000)
	from := LonLat{-122.3088, 47.4502} // SEA
	to := LonLat{140.3929, 35.7720}    // NRT

	path := p.GreatCirclePath(from, to, 64, 80)
	if len(path) != 65 {
		t.Fatalf("expected segments+1 = 65 points, got %d", len(path))
	}
	if path[0] != from || path[64] != to {
		t.Fatalf("endpoints not preserved: first=%v last=%v", path[0], path[64])
	}

	// The midpoint must be lifted above the straight-line midpoint.
	_, y1 := p.Project(from)
	_, y2 := p.Project(to)
	_, my := p.Project(path[32])
	straightMidY := (y1 + y2) / 2
	if my >= straightMidY {
		t.Errorf("arc midpoint y=%f not above straight midpoint y=%f", my, straightMidY)
	}
}

func TestGreatCirclePathDeterministic(t *testing.T) {
	p := NewProjection(2000, 1000)
	from := LonLat{-122.3088, 47.4502}
	to := LonLat{-73.7781, 40.6413}

	a := p.GreatCirclePath(from, to, 32, 80)
	b := p.GreatCirclePath(from, to, 32, 80)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGreatCirclePathArcHeightClamped(t *testing.T) {
	p := NewProjection(2000, 1000)
	from := LonLat{-122.3088, 47.4502}
	to := LonLat{140.3929, 35.7720}

	tall := p.GreatCirclePath(from, to, 64, 1000)
	short := p.GreatCirclePath(from, to, 64, 10)

	_, tallY := p.Project(tall[32])
	_, shortY := p.Project(short[32])
	if tallY >= shortY {
		t.Errorf("larger max arc height should lift the midpoint more: %f vs %f", tallY, shortY)
	}
}
