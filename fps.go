package windowbirds

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is the overlay refresh interval in seconds.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text image is redrawn roughly every fpsRefresh seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	sinceFlush float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	o.sinceFlush = fpsRefresh
	return o
}

func (o *fpsOverlay) update(dt float64) {
	o.sinceFlush += dt
	if o.sinceFlush < fpsRefresh {
		return
	}
	o.sinceFlush = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
