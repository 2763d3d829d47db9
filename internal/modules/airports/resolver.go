package airports

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/modules/geo"
	"gorm.io/gorm"
)

// Resolver maps IATA codes to coordinates. Unknown codes resolve to a
// deterministic pseudo-coordinate derived from the code hash, so the same
// unknown code always lands on the same point (render and cache stability),
// and HasCoordinates lets callers distinguish real positions from fallbacks.
type Resolver struct {
	db *gorm.DB

	mu    sync.RWMutex
	cache map[string]resolved
}

type resolved struct {
	point geo.LonLat
	known bool
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db, cache: make(map[string]resolved)}
}

// CoordinatesFor returns the [lon, lat] for an IATA code, falling back to a
// hash-derived pseudo-coordinate when the airport is unknown or unpositioned.
func (r *Resolver) CoordinatesFor(code string) geo.LonLat {
	point, _ := r.lookup(code)
	return point
}

// HasCoordinates reports whether the code resolved to a real stored position.
func (r *Resolver) HasCoordinates(code string) bool {
	_, known := r.lookup(code)
	return known
}

// Invalidate drops the lookup cache (after airport imports).
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]resolved)
	r.mu.Unlock()
}

func (r *Resolver) lookup(code string) (geo.LonLat, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallbackCoordinates(code), false
	}

	r.mu.RLock()
	if hit, ok := r.cache[code]; ok {
		r.mu.RUnlock()
		return hit.point, hit.known
	}
	r.mu.RUnlock()

	point, known := r.query(code)

	r.mu.Lock()
	r.cache[code] = resolved{point: point, known: known}
	r.mu.Unlock()

	return point, known
}

func (r *Resolver) query(code string) (geo.LonLat, bool) {
	if r.db != nil {
		var airport models.AirportModel
		err := r.db.First(&airport, "code = ?", code).Error
		if err == nil && airport.HasCoordinates() {
			return geo.LonLat{*airport.Longitude, *airport.Latitude}, true
		}
	}
	return fallbackCoordinates(code), false
}

// fallbackCoordinates derives a stable pseudo-position from the code:
// FNV-1a hash mod 360 - 180 for longitude, a folded secondary value
// mod 180 - 90 for latitude.
func fallbackCoordinates(code string) geo.LonLat {
	h := fnv.New32a()
	h.Write([]byte(code))
	sum := h.Sum32()

	lon := float64(sum%360) - 180
	lat := float64((sum/360)%180) - 90
	return geo.LonLat{lon, lat}
}
