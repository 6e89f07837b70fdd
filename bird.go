package windowbirds

import "math"

// Variant classifies a bird by the clock field that spawned it.
type Variant uint8

const (
	VariantSecond Variant = iota // light, fast; one per second tick
	VariantMinute                // dark, slow; one per minute tick
)

// Bird motion constants.
const (
	SecondSpeed   = 2.4
	MinuteSpeed   = SecondSpeed / 2
	FlapStep      = 0.25
	WingAmplitude = 4
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantSecond:
		return "second"
	case VariantMinute:
		return "minute"
	default:
		return "unknown"
	}
}

// Speed returns the fixed horizontal velocity for the variant, in canvas
// units per frame.
func (v Variant) Speed() float64 {
	if v == VariantMinute {
		return MinuteSpeed
	}
	return SecondSpeed
}

// Color returns the fill color for the variant.
func (v Variant) Color() Color {
	if v == VariantMinute {
		return ColorMinuteBird
	}
	return ColorSecondBird
}

// Bird is a single transient sprite crossing the window. Y is fixed at
// creation; X and FlapPhase advance every frame.
type Bird struct {
	X, Y      float64
	Velocity  float64
	Variant   Variant
	FlapPhase float64
}

// newBird creates a bird of the given variant at (x, y) with flap phase 0.
func newBird(v Variant, x, y float64) Bird {
	return Bird{X: x, Y: y, Velocity: v.Speed(), Variant: v}
}

// advance moves the bird one frame forward.
func (b *Bird) advance() {
	b.X += b.Velocity
	b.FlapPhase += FlapStep
}

// WingOffset returns the vertical wing displacement for the current phase.
func (b Bird) WingOffset() float64 {
	return math.Sin(b.FlapPhase) * WingAmplitude
}

// Parts returns the body, upper wing and lower wing rectangles in canvas
// coordinates.
func (b Bird) Parts() [3]Rect {
	off := b.WingOffset()
	return [3]Rect{
		{X: b.X - 10, Y: b.Y - 3, Width: 20, Height: 6},
		{X: b.X - 4, Y: b.Y - 8 + off, Width: 6, Height: 6},
		{X: b.X - 4, Y: b.Y + 2 - off, Width: 6, Height: 6},
	}
}

// advanceBirds steps every bird in place.
func advanceBirds(birds []Bird) {
	for i := range birds {
		birds[i].advance()
	}
}

// pruneBirds removes, in place, every bird whose x is past exitX and returns
// the shortened slice. Order of surviving birds is preserved.
func pruneBirds(birds []Bird, exitX float64) []Bird {
	kept := birds[:0]
	for _, b := range birds {
		if b.X > exitX {
			continue
		}
		kept = append(kept, b)
	}
	clear(birds[len(kept):])
	return kept
}
