package routemap

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
)

// canvas is a minimal raster surface over a stdlib RGBA image. It draws the
// few primitives the map needs: lines, filled dots, a graticule.
type canvas struct {
	img *image.RGBA
	w   int
	h   int
}

// newCanvas starts fully transparent; call fill for an opaque base.
func newCanvas(width, height int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &canvas{img: img, w: width, h: height}
}

func (cv *canvas) fill(c color.RGBA) {
	for y := 0; y < cv.h; y++ {
		for x := 0; x < cv.w; x++ {
			cv.img.SetRGBA(x, y, c)
		}
	}
}

func (cv *canvas) set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= cv.w || y >= cv.h {
		return
	}
	cv.img.SetRGBA(x, y, c)
}

// line draws with Bresenham's algorithm.
func (cv *canvas) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		cv.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// polyline connects consecutive points.
func (cv *canvas) polyline(points [][2]int, c color.RGBA) {
	for i := 1; i < len(points); i++ {
		cv.line(points[i-1][0], points[i-1][1], points[i][0], points[i][1], c)
	}
}

// dot draws a filled circle of the given radius.
func (cv *canvas) dot(cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				cv.set(cx+dx, cy+dy, c)
			}
		}
	}
}

// graticule draws meridians and parallels every step degrees.
func (cv *canvas) graticule(step float64, c color.RGBA) {
	if step <= 0 {
		return
	}
	for lon := -180.0; lon <= 180.0; lon += step {
		x := int((lon + 180) / 360 * float64(cv.w))
		cv.line(x, 0, x, cv.h-1, c)
	}
	for lat := -90.0; lat <= 90.0; lat += step {
		y := int((90 - lat) / 180 * float64(cv.h))
		cv.line(0, y, cv.w-1, y, c)
	}
}

// encodePNG renders the canvas. PNG encoding is deterministic for a given
// pixel buffer, which keeps repeated captures byte-identical.
func (cv *canvas) encodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, cv.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseHexColor accepts #RGB and #RRGGBB.
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
