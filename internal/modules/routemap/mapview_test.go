package routemap

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/modules/airports"
)

// small canvas keeps raster tests fast
func testOptions() config.MapOptions {
	return config.MapOptions{CanvasWidth: 200, CanvasHeight: 100}
}

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()
	engine := NewEngine(airports.NewResolver(nil))
	return engine.BuildSnapshot([]models.FlightModel{
		testFlight("f1", "SEA", "LAX"),
		testFlight("f2", "SEA", "ANC"),
	}, testOptions())
}

func TestMapViewLifecycle(t *testing.T) {
	v := NewMapView()
	if v.State() != StateUninitialized {
		t.Fatalf("new view state = %s", v.State())
	}

	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if v.State() != StateReady {
		t.Fatalf("state after Init = %s", v.State())
	}

	if err := v.Update(testSnapshot(t)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v.State() != StateReady {
		t.Fatalf("state after Update = %s", v.State())
	}

	if _, err := v.Capture(CaptureNormal); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if v.State() != StateReady {
		t.Fatalf("state after Capture = %s", v.State())
	}

	if err := v.Dispose(); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	if v.State() != StateDisposed {
		t.Fatalf("state after Dispose = %s", v.State())
	}
}

func TestMapViewInvalidTransitions(t *testing.T) {
	v := NewMapView()

	if _, err := v.Capture(CaptureNormal); !errors.Is(err, ErrViewNotReady) {
		t.Errorf("Capture before Init: %v", err)
	}
	if err := v.Update(Snapshot{}); !errors.Is(err, ErrViewNotReady) {
		t.Errorf("Update before Init: %v", err)
	}

	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	if err := v.Init(testSnapshot(t), testOptions()); !errors.Is(err, ErrViewInitTwice) {
		t.Errorf("double Init: %v", err)
	}
}

func TestMapViewDisposedIsTerminal(t *testing.T) {
	v := NewMapView()
	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	if err := v.Dispose(); err != nil {
		t.Fatal(err)
	}

	if err := v.Init(testSnapshot(t), testOptions()); !errors.Is(err, ErrViewDisposed) {
		t.Errorf("Init after Dispose: %v", err)
	}
	if err := v.Update(Snapshot{}); !errors.Is(err, ErrViewDisposed) {
		t.Errorf("Update after Dispose: %v", err)
	}
	if _, err := v.Capture(CaptureNormal); !errors.Is(err, ErrViewDisposed) {
		t.Errorf("Capture after Dispose: %v", err)
	}
	if err := v.Dispose(); !errors.Is(err, ErrViewDisposed) {
		t.Errorf("double Dispose: %v", err)
	}
}

func TestMapViewCaptureByteIdentical(t *testing.T) {
	v := NewMapView()
	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	defer v.Dispose()

	for _, mode := range []CaptureMode{CaptureNormal, CaptureMinimal} {
		first, err := v.Capture(mode)
		if err != nil {
			t.Fatalf("%s capture: %v", mode, err)
		}
		second, err := v.Capture(mode)
		if err != nil {
			t.Fatalf("%s recapture: %v", mode, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("%s captures of an unchanged view differ", mode)
		}
		if len(first) == 0 {
			t.Errorf("%s capture produced no bytes", mode)
		}
	}
}

func TestMapViewCaptureModesDiffer(t *testing.T) {
	v := NewMapView()
	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	defer v.Dispose()

	normal, err := v.Capture(CaptureNormal)
	if err != nil {
		t.Fatal(err)
	}
	minimal, err := v.Capture(CaptureMinimal)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(normal, minimal) {
		t.Error("normal and minimal captures should render differently")
	}
}

func TestMapViewCaptureUnknownMode(t *testing.T) {
	v := NewMapView()
	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	defer v.Dispose()

	if _, err := v.Capture(CaptureMode("fancy")); err == nil {
		t.Error("unknown capture mode should fail")
	}
	if v.State() != StateReady {
		t.Errorf("failed capture left state %s", v.State())
	}
}

func TestCaptureMinimalTransparentBackground(t *testing.T) {
	// A marker at (0°, 0°) projects to the exact canvas center, away from
	// everything else on an otherwise empty snapshot.
	snap := Snapshot{
		Markers: []AirportMarker{{Code: "NUL", Coordinates: [2]float64{0, 0}, FlightCount: 1}},
	}

	v := NewMapView()
	if err := v.Init(snap, testOptions()); err != nil {
		t.Fatal(err)
	}
	defer v.Dispose()

	data, err := v.Capture(CaptureMinimal)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode minimal capture: %v", err)
	}

	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("minimal capture corner alpha = %d, want fully transparent", a)
	}
	if _, _, _, a := img.At(100, 50).RGBA(); a == 0 {
		t.Error("minimal capture should still draw airport markers")
	}

	normal, err := v.Capture(CaptureNormal)
	if err != nil {
		t.Fatal(err)
	}
	img, err = png.Decode(bytes.NewReader(normal))
	if err != nil {
		t.Fatalf("decode normal capture: %v", err)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a == 0 {
		t.Error("normal capture should fill an opaque background")
	}
}

func TestCapturePNGSignature(t *testing.T) {
	v := NewMapView()
	if err := v.Init(testSnapshot(t), testOptions()); err != nil {
		t.Fatal(err)
	}
	defer v.Dispose()

	data, err := v.Capture(CaptureMinimal)
	if err != nil {
		t.Fatal(err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if len(data) < 8 || !bytes.Equal(data[:8], pngMagic) {
		t.Error("capture is not a PNG stream")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#FF6464", 0xFF, 0x64, 0x64, true},
		{"#0B1220", 0x0B, 0x12, 0x20, true},
		{"#fff", 0xFF, 0xFF, 0xFF, true},
		{"01426A", 0x01, 0x42, 0x6A, true},
		{"#12345", 0, 0, 0, false},
		{"", 0, 0, 0, false},
		{"#GGGGGG", 0, 0, 0, false},
	}
	for _, tt := range tests {
		c, err := parseHexColor(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("parseHexColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (c.R != tt.r || c.G != tt.g || c.B != tt.b) {
			t.Errorf("parseHexColor(%q) = %v", tt.in, c)
		}
	}
}
