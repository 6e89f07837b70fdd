package windowbirds

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Hotkeys handled by Run.
const (
	keyScreenshot = ebiten.KeyF12
	keyDebug      = ebiten.KeyF3
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels. Zero uses the
	// canvas size. The scene is always laid out at the canvas size and
	// scaled to fit.
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives scene until the window is closed or the
// scene's Update returns ebiten.Termination.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = CanvasWidth, CanvasHeight
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// game adapts a Scene to ebiten.Game and handles hotkeys.
type game struct {
	scene *Scene
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(keyScreenshot) {
		g.scene.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(keyDebug) {
		g.scene.SetDebugMode(!g.scene.DebugMode())
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return CanvasWidth, CanvasHeight
}
