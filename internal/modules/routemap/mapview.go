package routemap

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/modules/geo"
)

// ViewState is the lifecycle state of a MapView.
type ViewState int

const (
	StateUninitialized ViewState = iota
	StateInitializing
	StateReady
	StateUpdating
	StateCapturing
	StateDisposed
)

func (s ViewState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateUpdating:
		return "updating"
	case StateCapturing:
		return "capturing"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// CaptureMode selects what a capture renders.
type CaptureMode string

const (
	// CaptureNormal renders graticule, heatmap, routes and airport markers.
	CaptureNormal CaptureMode = "normal"
	// CaptureMinimal renders routes and markers on a transparent background.
	CaptureMinimal CaptureMode = "minimal"
)

var (
	ErrViewDisposed  = errors.New("map view is disposed")
	ErrViewNotReady  = errors.New("map view is not ready")
	ErrViewInitTwice = errors.New("map view already initialized")
)

// MapView owns one render surface and walks a strict lifecycle:
// uninitialized → ready (via Init), ready ⇄ updating, ready → capturing →
// ready, ready → disposed (terminal). Captures read only the stored
// snapshot, so repeated captures of an unchanged view are byte-identical.
type MapView struct {
	mu       sync.Mutex
	state    ViewState
	opts     config.MapOptions
	snapshot Snapshot
}

func NewMapView() *MapView {
	return &MapView{state: StateUninitialized}
}

// State returns the current lifecycle state.
func (v *MapView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Init moves the view to ready with its first snapshot and options.
func (v *MapView) Init(snap Snapshot, opts config.MapOptions) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch v.state {
	case StateDisposed:
		return ErrViewDisposed
	case StateUninitialized:
	default:
		return ErrViewInitTwice
	}

	v.state = StateInitializing
	v.opts = opts.Normalized()
	v.snapshot = snap
	v.state = StateReady
	return nil
}

// Update replaces the snapshot. Only legal from ready.
func (v *MapView) Update(snap Snapshot) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == StateDisposed {
		return ErrViewDisposed
	}
	if v.state != StateReady {
		return ErrViewNotReady
	}

	v.state = StateUpdating
	v.snapshot = snap
	v.state = StateReady
	return nil
}

// Capture rasterizes the current snapshot to PNG bytes.
func (v *MapView) Capture(mode CaptureMode) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == StateDisposed {
		return nil, ErrViewDisposed
	}
	if v.state != StateReady {
		return nil, ErrViewNotReady
	}
	if mode != CaptureNormal && mode != CaptureMinimal {
		return nil, fmt.Errorf("unknown capture mode %q", mode)
	}

	v.state = StateCapturing
	data, err := v.render(mode)
	v.state = StateReady
	return data, err
}

// Dispose is terminal; every later call on the view fails.
func (v *MapView) Dispose() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state == StateDisposed {
		return ErrViewDisposed
	}
	if v.state != StateReady && v.state != StateUninitialized {
		return ErrViewNotReady
	}
	v.state = StateDisposed
	v.snapshot = Snapshot{}
	return nil
}

func (v *MapView) render(mode CaptureMode) ([]byte, error) {
	cv := newCanvas(v.opts.CanvasWidth, v.opts.CanvasHeight)
	proj := geo.NewProjection(float64(v.opts.CanvasWidth), float64(v.opts.CanvasHeight))

	// The base layer (background fill, graticule, heatmap) is normal-only;
	// minimal captures stay transparent behind the routes and markers.
	if mode == CaptureNormal {
		background, err := parseHexColor(v.opts.Background)
		if err != nil {
			return nil, err
		}
		cv.fill(background)
		cv.graticule(v.opts.GraticuleStep, shade(background, 24))
		for _, hp := range v.snapshot.Heatmap {
			x, y := proj.Project(geo.LonLat{hp.Coordinates[0], hp.Coordinates[1]})
			radius := int(hp.Weight * 6)
			cv.dot(int(x), int(y), radius, shade(background, 40))
		}
	}

	for _, feature := range v.snapshot.Features {
		stroke, err := parseHexColor(feature.Color)
		if err != nil {
			stroke, _ = parseHexColor(FallbackRouteColor)
		}
		points := make([][2]int, len(feature.Path))
		for i, ll := range feature.Path {
			x, y := proj.Project(geo.LonLat{ll[0], ll[1]})
			points[i] = [2]int{int(x), int(y)}
		}
		cv.polyline(points, stroke)
	}

	marker, _ := parseHexColor("#FFFFFF")
	for _, m := range v.snapshot.Markers {
		x, y := proj.Project(geo.LonLat{m.Coordinates[0], m.Coordinates[1]})
		cv.dot(int(x), int(y), 3, marker)
	}

	return cv.encodePNG()
}

// shade lightens a color by a fixed amount per channel.
func shade(c color.RGBA, by uint8) color.RGBA {
	lift := func(v, by uint8) uint8 {
		if int(v)+int(by) > 255 {
			return 255
		}
		return v + by
	}
	return color.RGBA{R: lift(c.R, by), G: lift(c.G, by), B: lift(c.B, by), A: 255}
}
