package pagination

import "testing"

func TestMeta(t *testing.T) {
	tests := []struct {
		name      string
		q         Query
		total     int64
		totalPage int
		hasNext   bool
	}{
		{"exact fit", Query{Page: 1, Size: 20}, 40, 2, true},
		{"partial last page", Query{Page: 2, Size: 20}, 41, 3, true},
		{"on last page", Query{Page: 3, Size: 20}, 41, 3, false},
		{"empty set", Query{Page: 1, Size: 20}, 0, 0, false},
		{"single item", Query{Page: 1, Size: 20}, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Meta(tt.q, tt.total)
			if p.Total != tt.total || p.TotalPage != tt.totalPage || p.HasNextPage != tt.hasNext {
				t.Errorf("Meta(%+v, %d) = %+v", tt.q, tt.total, p)
			}
			if p.CurrentPage != tt.q.Page || p.Size != tt.q.Size {
				t.Errorf("query fields not echoed: %+v", p)
			}
		})
	}
}

func TestParseIntOr(t *testing.T) {
	if parseIntOr("15", 1) != 15 {
		t.Error("valid number should parse")
	}
	if parseIntOr("nope", 7) != 7 {
		t.Error("garbage should fall back to the default")
	}
}
