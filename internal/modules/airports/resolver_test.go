package airports

import (
	"testing"
)

func TestFallbackCoordinatesDeterministic(t *testing.T) {
	for _, code := range []string{"SEA", "LAX", "ZZZ", "QQQ"} {
		a := fallbackCoordinates(code)
		b := fallbackCoordinates(code)
		if a != b {
			t.Errorf("fallback for %s not deterministic: %v vs %v", code, a, b)
		}
	}
}

func TestFallbackCoordinatesInRange(t *testing.T) {
	codes := []string{"SEA", "LAX", "ANC", "JFK", "LHR", "NRT", "XXX", "ZZZ", "ABC", "QQQ"}
	for _, code := range codes {
		p := fallbackCoordinates(code)
		if p.Lon() < -180 || p.Lon() >= 180 {
			t.Errorf("%s: longitude %f out of range", code, p.Lon())
		}
		if p.Lat() < -90 || p.Lat() >= 90 {
			t.Errorf("%s: latitude %f out of range", code, p.Lat())
		}
	}
}

func TestFallbackCoordinatesSpread(t *testing.T) {
	if fallbackCoordinates("SEA") == fallbackCoordinates("LAX") {
		t.Error("distinct codes should not collide on the same pseudo-position")
	}
}

func TestResolverWithoutDatabase(t *testing.T) {
	r := NewResolver(nil)

	p := r.CoordinatesFor("ZZZ")
	if p != fallbackCoordinates("ZZZ") {
		t.Errorf("unknown code should use the hash fallback, got %v", p)
	}
	if r.HasCoordinates("ZZZ") {
		t.Error("fallback position must not count as resolved")
	}

	// Second lookup hits the cache and must agree.
	if q := r.CoordinatesFor("ZZZ"); q != p {
		t.Errorf("cached lookup differs: %v vs %v", q, p)
	}
}

func TestResolverInvalidate(t *testing.T) {
	r := NewResolver(nil)
	p := r.CoordinatesFor("SEA")
	r.Invalidate()
	if q := r.CoordinatesFor("SEA"); q != p {
		t.Errorf("fallback must survive cache invalidation: %v vs %v", q, p)
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sea", "SEA"},
		{" LAX ", "LAX"},
		{"SE", ""},
		{"SEAT", ""},
		{"S3A", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeCode(tt.in); got != tt.want {
			t.Errorf("normalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
