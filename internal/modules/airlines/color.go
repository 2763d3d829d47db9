package airlines

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// AutoColor derives a stable, readable brand color from an airline code when
// no curated color is known. Hash → hue, with fixed saturation/lightness so
// every generated color sits in the same visual register on the dark map.
func AutoColor(code string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(strings.TrimSpace(code))))
	sum := h.Sum32()

	hue := float64(sum % 360)
	saturation := 0.65
	lightness := 0.55

	return hslToHex(hue, saturation, lightness)
}

// AutoColorSecondary is a darker companion shade of the same hue.
func AutoColorSecondary(code string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToUpper(strings.TrimSpace(code))))
	sum := h.Sum32()

	return hslToHex(float64(sum%360), 0.55, 0.35)
}

func hslToHex(h, s, l float64) string {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02X%02X%02X",
		int(math.Round((r+m)*255)),
		int(math.Round((g+m)*255)),
		int(math.Round((b+m)*255)))
}
