package windowbirds

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// SceneConfig holds the boundary inputs of a Scene. Zero fields fall back to
// the system clock and the global math/rand/v2 source.
type SceneConfig struct {
	// Clock is sampled once per Update.
	Clock Clock
	// Rand supplies uniform values for vertical spawn placement.
	Rand *rand.Rand
}

// Scene is the top-level object that owns the bird collection, clock state,
// layout, and render buffer. All mutation happens on the frame loop's
// goroutine; a Scene is not safe for concurrent use.
type Scene struct {
	clock     Clock
	randFloat func() float64
	layout    Layout
	spawner   *Spawner
	birds     []Bird
	now       TimeOfDay
	frame     uint64

	commands []RenderCommand
	debug    bool

	// ScreenshotDir is the directory screenshots and SVG snapshots are
	// written to. Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
	snapshotQueue   []string

	testRunner *TestRunner
	// ExitOnScriptDone makes Update return ebiten.Termination once an
	// attached TestRunner has finished.
	ExitOnScriptDone bool
}

// NewScene creates a scene on the default 800x500 layout. The spawner is
// primed with the clock's current reading so no bird spawns until the next
// tick.
func NewScene(cfg SceneConfig) *Scene {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock
	}
	randFloat := rand.Float64
	if cfg.Rand != nil {
		randFloat = cfg.Rand.Float64
	}
	now := Sample(clock)
	return &Scene{
		clock:         clock,
		randFloat:     randFloat,
		layout:        DefaultLayout(),
		spawner:       NewSpawner(now),
		now:           now,
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		ScreenshotDir: "screenshots",
	}
}

// Geometry returns the scene's fixed layout.
func (s *Scene) Geometry() Layout {
	return s.layout
}

// Birds returns the live birds. The returned slice MUST NOT be mutated.
func (s *Scene) Birds() []Bird {
	return s.birds
}

// Now returns the time of day sampled by the most recent Update.
func (s *Scene) Now() TimeOfDay {
	return s.now
}

// Frame returns the number of simulation steps taken.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Update advances the attached test script, if any, then runs one simulation
// step. It returns ebiten.Termination when the script has finished and
// ExitOnScriptDone is set.
func (s *Scene) Update() error {
	if r := s.testRunner; r != nil {
		if r.Done() && s.ExitOnScriptDone {
			return ebiten.Termination
		}
		r.step(s)
	}
	s.Step()
	return nil
}

// Step runs one frame of simulation: sample the clock, spawn on tick,
// advance every bird, then prune birds past the exit edge.
func (s *Scene) Step() {
	s.now = Sample(s.clock)

	secondTick, minuteTick := s.spawner.Observe(s.now)
	if secondTick {
		s.spawn(VariantSecond)
	}
	if minuteTick {
		s.spawn(VariantMinute)
	}

	advanceBirds(s.birds)
	s.birds = pruneBirds(s.birds, s.layout.ExitX)
	s.frame++
}

// spawn adds one bird of variant v just off the window's left edge at a
// random height in the spawn band.
func (s *Scene) spawn(v Variant) {
	y := s.layout.SpawnY(s.randFloat())
	s.birds = append(s.birds, newBird(v, s.layout.SpawnX, y))
}

// Draw emits the frame's render commands and paints them onto screen, then
// writes any queued screenshots and snapshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	s.emitFrame(s.now)

	if s.debug {
		stats.emitTime = time.Since(t0)
		t0 = time.Now()
	}

	submitCommands(screen, s.commands)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		stats.birdCount = len(s.birds)
		stats.visibleCount = countVisible(s.birds, s.layout.Window)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
	s.flushSnapshots()
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and entity stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// setTime moves a FixedClock scene clock. Other clocks cannot be moved and
// the request is logged and ignored.
func (s *Scene) setTime(hour, minute, second int) {
	fc, ok := s.clock.(*FixedClock)
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "[windowbirds] settime %02d:%02d:%02d ignored: clock is not a FixedClock\n",
			hour, minute, second)
		return
	}
	fc.Set(hour, minute, second)
}
