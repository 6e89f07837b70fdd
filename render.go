package windowbirds

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandFillRect   CommandType = iota // solid rectangle
	CommandStrokeRect                    // unfilled rectangle outline
	CommandFillCircle                    // solid circle inscribed in Bounds
)

// Layer orders commands back to front. Commands are emitted in
// non-decreasing layer order.
type Layer uint8

const (
	LayerBackground Layer = iota // full-canvas clear
	LayerSky                     // sky rectangle inside the window
	LayerCelestial               // sun or moon
	LayerBirds                   // all live birds
	LayerFrame                   // window outline and sill
	LayerCurtains                // curtains, always on top
)

var layerNames = [...]string{"background", "sky", "celestial", "birds", "frame", "curtains"}

// String returns the layer name.
func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// Celestial body sizes and crescent offset.
const (
	sunDiameter  = 36
	moonDiameter = 26
	crescentDX   = 6
	crescentDY   = -2
)

// RenderCommand is a single draw instruction emitted for a frame.
type RenderCommand struct {
	Type        CommandType
	Layer       Layer
	Bounds      Rect
	Color       Color
	StrokeWidth float64 // CommandStrokeRect only
}

// emitFrame rebuilds s.commands for the time of day t, in strict
// back-to-front order.
func (s *Scene) emitFrame(t TimeOfDay) {
	s.commands = s.commands[:0]
	l := &s.layout

	s.fillRect(LayerBackground, l.Canvas, ColorCanvas)

	sky := ColorNightSky
	if t.IsDay() {
		sky = ColorDaySky
	}
	s.fillRect(LayerSky, l.Window, sky)

	cx := l.CelestialX(t.Fraction())
	cy := l.CelestialY
	if t.IsDay() {
		s.fillCircle(LayerCelestial, cx, cy, sunDiameter, ColorSun)
	} else {
		// The crescent is a second sky-colored disc painted over the moon.
		s.fillCircle(LayerCelestial, cx, cy, moonDiameter, ColorMoon)
		s.fillCircle(LayerCelestial, cx+crescentDX, cy+crescentDY, moonDiameter, ColorNightSky)
	}

	for i := range s.birds {
		b := &s.birds[i]
		c := b.Variant.Color()
		for _, r := range b.Parts() {
			s.fillRect(LayerBirds, r, c)
		}
	}

	s.commands = append(s.commands, RenderCommand{
		Type:        CommandStrokeRect,
		Layer:       LayerFrame,
		Bounds:      l.Window,
		Color:       ColorFrame,
		StrokeWidth: l.FrameStroke,
	})
	s.fillRect(LayerFrame, l.Sill, ColorSill)

	s.fillRect(LayerCurtains, l.LeftCurtain, ColorCurtain)
	s.fillRect(LayerCurtains, l.RightCurtain, ColorCurtain)
}

func (s *Scene) fillRect(layer Layer, r Rect, c Color) {
	s.commands = append(s.commands, RenderCommand{Type: CommandFillRect, Layer: layer, Bounds: r, Color: c})
}

// fillCircle appends a circle of diameter d centered on (cx, cy).
func (s *Scene) fillCircle(layer Layer, cx, cy, d float64, c Color) {
	s.commands = append(s.commands, RenderCommand{
		Type:   CommandFillCircle,
		Layer:  layer,
		Bounds: Rect{X: cx - d/2, Y: cy - d/2, Width: d, Height: d},
		Color:  c,
	})
}

// submitCommands paints commands onto target in order.
func submitCommands(target *ebiten.Image, commands []RenderCommand) {
	for i := range commands {
		cmd := &commands[i]
		r := cmd.Bounds
		clr := cmd.Color.toRGBA()
		switch cmd.Type {
		case CommandFillRect:
			vector.DrawFilledRect(target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
		case CommandStrokeRect:
			vector.StrokeRect(target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(cmd.StrokeWidth), clr, false)
		case CommandFillCircle:
			vector.DrawFilledCircle(target, float32(r.X+r.Width/2), float32(r.Y+r.Height/2), float32(r.Width/2), clr, true)
		}
	}
}

// Commands returns the command list built by the most recent Draw or
// Render call. The returned slice MUST NOT be mutated and is only valid
// until the next frame.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// Render rebuilds the command list for the current state without painting
// it. Draw builds the same list before submitting it.
func (s *Scene) Render() []RenderCommand {
	s.emitFrame(s.now)
	return s.commands
}
