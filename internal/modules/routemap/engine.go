package routemap

import (
	"math"
	"sort"
	"strings"

	"github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/modules/airports"
	"github.com/flightfolio/core/internal/modules/geo"
)

// Engine turns flights into a renderable Snapshot. Flights missing either
// airport code are skipped silently; unresolvable codes still render at
// their deterministic fallback position. Every surviving flight yields
// exactly one route feature.
type Engine struct {
	resolver *airports.Resolver
}

func NewEngine(resolver *airports.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// BuildSnapshot projects the given flights with the given renderer options.
func (e *Engine) BuildSnapshot(flights []models.FlightModel, opts config.MapOptions) Snapshot {
	opts = opts.Normalized()
	proj := geo.NewProjection(float64(opts.CanvasWidth), float64(opts.CanvasHeight))

	snap := Snapshot{
		Features: make([]RouteFeature, 0, len(flights)),
	}
	counts := map[string]int{}

	for i := range flights {
		f := &flights[i]
		if strings.TrimSpace(f.DepartureCode) == "" || strings.TrimSpace(f.ArrivalCode) == "" {
			continue
		}

		from := e.resolver.CoordinatesFor(f.DepartureCode)
		to := e.resolver.CoordinatesFor(f.ArrivalCode)

		path := proj.GreatCirclePath(from, to, opts.ArcSegments, opts.MaxArcHeight)
		points := make([][2]float64, len(path))
		for j, ll := range path {
			points[j] = [2]float64{ll.Lon(), ll.Lat()}
		}

		snap.Features = append(snap.Features, RouteFeature{
			FlightID: f.ID,
			Path:     points,
			Color:    routeColor(f),
			Tooltip:  tooltipFor(f),
		})

		counts[f.DepartureCode]++
		counts[f.ArrivalCode]++
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		point := e.resolver.CoordinatesFor(code)
		coords := [2]float64{point.Lon(), point.Lat()}
		count := counts[code]

		snap.Markers = append(snap.Markers, AirportMarker{
			Code:        code,
			Coordinates: coords,
			Resolved:    e.resolver.HasCoordinates(code),
			FlightCount: count,
		})
		snap.Heatmap = append(snap.Heatmap, HeatPoint{
			Coordinates: coords,
			Weight:      heatWeight(count),
		})
	}

	return snap
}

// heatWeight compresses visit counts logarithmically so hub airports do not
// wash out the rest of the map.
func heatWeight(count int) float64 {
	return math.Log10(float64(count)+1) * 2
}

// routeColor prefers the airline's brand color. The default white
// placeholder counts as unset; never-curated airlines fall back like
// flights with no airline at all.
func routeColor(f *models.FlightModel) string {
	if f.Airline != nil && f.Airline.BrandColorPrimary != "" && f.Airline.BrandColorPrimary != models.DefaultBrandColor {
		return f.Airline.BrandColorPrimary
	}
	return FallbackRouteColor
}

func tooltipFor(f *models.FlightModel) RouteTooltip {
	t := RouteTooltip{
		Departure:         f.DepartureCode,
		Arrival:           f.ArrivalCode,
		FlightNumber:      f.FlightNumber,
		FlightDate:        f.FlightDate,
		DistanceMiles:     f.DistanceMiles,
		CarbonFootprintKg: f.CarbonFootprintKg,
	}
	if f.AirlineCode != nil {
		t.AirlineCode = *f.AirlineCode
	}
	if f.Airline != nil {
		t.AirlineName = f.Airline.Name
	}
	return t
}
