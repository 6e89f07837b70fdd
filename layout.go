package windowbirds

import "github.com/tanema/gween/ease"

// Layout proportions relative to the canvas and the window region.
const (
	windowWidthRatio  = 0.6
	windowHeightRatio = 0.55
	curtainWidthRatio = 0.25
	celestialYRatio   = 0.10
	spawnBandTop      = 0.30
	spawnBandBottom   = 0.65

	sillOverhang   = 10
	sillHeight     = 15
	curtainRaise   = 10
	spawnOffset    = 50
	exitMargin     = 100
	frameThickness = 3
)

// Layout is the fixed geometry of the scene, derived once from the canvas
// size. All coordinates are in canvas units.
type Layout struct {
	Canvas       Rect
	Window       Rect
	Sill         Rect
	LeftCurtain  Rect
	RightCurtain Rect
	SpawnX       float64 // starting x of every new bird
	ExitX        float64 // birds strictly past this x are pruned
	SpawnBandTop float64 // absolute y range for new birds
	SpawnBandBot float64
	CelestialY   float64
	FrameStroke  float64
}

// NewLayout computes the scene geometry for a canvas of the given size.
// The window region is centered in the canvas.
func NewLayout(width, height float64) Layout {
	ww := width * windowWidthRatio
	wh := height * windowHeightRatio
	win := Rect{X: (width - ww) / 2, Y: (height - wh) / 2, Width: ww, Height: wh}

	cw := ww * curtainWidthRatio
	top := win.Y - curtainRaise
	curtainH := height - top

	return Layout{
		Canvas: Rect{Width: width, Height: height},
		Window: win,
		Sill: Rect{
			X:      win.X - sillOverhang,
			Y:      win.Bottom(),
			Width:  ww + 2*sillOverhang,
			Height: sillHeight,
		},
		LeftCurtain:  Rect{X: win.X - cw, Y: top, Width: cw, Height: curtainH},
		RightCurtain: Rect{X: win.Right(), Y: top, Width: cw, Height: curtainH},
		SpawnX:       win.X - spawnOffset,
		ExitX:        win.Right() + exitMargin,
		SpawnBandTop: win.Y + wh*spawnBandTop,
		SpawnBandBot: win.Y + wh*spawnBandBottom,
		CelestialY:   win.Y + wh*celestialYRatio,
		FrameStroke:  frameThickness,
	}
}

// DefaultLayout is the layout for the standard 800x500 canvas.
func DefaultLayout() Layout {
	return NewLayout(CanvasWidth, CanvasHeight)
}

// CelestialX maps a fractional hour in [0, 24] linearly onto the window's
// horizontal span: 0 is the left edge and 24 the right edge.
func (l Layout) CelestialX(hours float64) float64 {
	return float64(ease.Linear(float32(hours), float32(l.Window.X), float32(l.Window.Width), 24))
}

// SpawnY maps a unit value u in [0, 1) into the spawn band.
func (l Layout) SpawnY(u float64) float64 {
	return l.SpawnBandTop + u*(l.SpawnBandBot-l.SpawnBandTop)
}
