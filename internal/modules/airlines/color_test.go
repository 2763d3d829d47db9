package airlines

import (
	"regexp"
	"testing"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestAutoColorDeterministic(t *testing.T) {
	for _, code := range []string{"AS", "DL", "UA", "BA", "NH"} {
		if AutoColor(code) != AutoColor(code) {
			t.Errorf("AutoColor(%s) not deterministic", code)
		}
	}
}

func TestAutoColorNormalizesInput(t *testing.T) {
	if AutoColor("as") != AutoColor(" AS ") {
		t.Error("case and whitespace should not change the derived color")
	}
}

func TestAutoColorFormat(t *testing.T) {
	for _, code := range []string{"AS", "DL", "UA", "ZZ", "Q1"} {
		c := AutoColor(code)
		if !hexColorRe.MatchString(c) {
			t.Errorf("AutoColor(%s) = %q, not a #RRGGBB color", code, c)
		}
		s := AutoColorSecondary(code)
		if !hexColorRe.MatchString(s) {
			t.Errorf("AutoColorSecondary(%s) = %q, not a #RRGGBB color", code, s)
		}
	}
}

func TestAutoColorSecondaryDarker(t *testing.T) {
	// Same hue, lower lightness: the secondary must differ from the primary.
	for _, code := range []string{"AS", "DL", "BA"} {
		if AutoColor(code) == AutoColorSecondary(code) {
			t.Errorf("secondary color for %s should differ from primary", code)
		}
	}
}

func TestHSLToHexKnownValues(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#FF0000"},
		{120, 1, 0.5, "#00FF00"},
		{240, 1, 0.5, "#0000FF"},
		{0, 0, 1, "#FFFFFF"},
		{0, 0, 0, "#000000"},
	}
	for _, tt := range tests {
		if got := hslToHex(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("hslToHex(%f, %f, %f) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
