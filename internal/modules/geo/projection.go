package geo

import "math"

// shortPathUnits is the display-space distance below which an arc degrades to
// a straight two-point line; the sinusoidal bump is invisible at that scale.
const shortPathUnits = 50.0

// Projection converts lon/lat into display-space coordinates on an
// equirectangular canvas with (0,0) at the top-left.
type Projection struct {
	Width  float64
	Height float64
}

// NewProjection returns a projection for the given canvas size.
func NewProjection(width, height float64) Projection {
	return Projection{Width: width, Height: height}
}

// Project converts a coordinate to display space. Y grows downward.
func (p Projection) Project(ll LonLat) (x, y float64) {
	x = (ll.Lon() + 180) / 360 * p.Width
	y = (90 - ll.Lat()) / 180 * p.Height
	return x, y
}

// Unproject converts display-space coordinates back to lon/lat.
func (p Projection) Unproject(x, y float64) LonLat {
	lon := x/p.Width*360 - 180
	lat := 90 - y/p.Height*180
	return LonLat{lon, lat}
}

// GreatCirclePath returns segments+1 points tracing a flight route between two
// coordinates. The shape is a display heuristic, not a spherical great circle:
// endpoints are interpolated linearly in projected space with a sinusoidal
// vertical offset of sin(t·π) × min(maxArcHeight, dist×0.3), which visually
// separates long-haul routes from straight lines. Deterministic in t, so two
// calls over the same inputs always produce identical paths.
func (p Projection) GreatCirclePath(from, to LonLat, segments int, maxArcHeight float64) []LonLat {
	if segments < 1 {
		segments = 1
	}

	x1, y1 := p.Project(from)
	x2, y2 := p.Project(to)
	dist := math.Hypot(x2-x1, y2-y1)

	if dist < shortPathUnits {
		return []LonLat{from, to}
	}

	arcHeight := math.Min(maxArcHeight, dist*0.3)

	points := make([]LonLat, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := x1 + (x2-x1)*t
		y := y1 + (y2-y1)*t - math.Sin(t*math.Pi)*arcHeight
		points = append(points, p.Unproject(x, y))
	}
	return points
}
