package windowbirds

import (
	"image/color"
	"math"
)

// Canvas dimensions in logical units.
const (
	CanvasWidth  = 800
	CanvasHeight = 500
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Gray8 builds an opaque gray Color from a single 8-bit level.
func Gray8(v uint8) Color {
	return RGB8(v, v, v)
}

// bytes returns the color as straight-alpha 8-bit channels.
func (c Color) bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Scene palette.
var (
	ColorCanvas     = RGB8(238, 236, 232)
	ColorDaySky     = RGB8(180, 210, 255)
	ColorNightSky   = RGB8(40, 60, 100)
	ColorSun        = RGB8(255, 230, 120)
	ColorMoon       = Gray8(240)
	ColorFrame      = Gray8(60)
	ColorSill       = Gray8(200)
	ColorCurtain    = Gray8(255)
	ColorSecondBird = Gray8(255)
	ColorMinuteBird = Gray8(30)
)

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

