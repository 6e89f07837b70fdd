package windowbirds

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// newTestScene returns a scene on a FixedClock at h:m:s with a seeded
// random source.
func newTestScene(h, m, s int) (*Scene, *FixedClock) {
	clock := NewFixedClock(h, m, s)
	scene := NewScene(SceneConfig{Clock: clock, Rand: rand.New(rand.NewPCG(1, 2))})
	return scene, clock
}

func countVariant(birds []Bird, v Variant) int {
	n := 0
	for _, b := range birds {
		if b.Variant == v {
			n++
		}
	}
	return n
}

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene(SceneConfig{})
	if s.clock != SystemClock {
		t.Error("clock should default to SystemClock")
	}
	if s.randFloat == nil {
		t.Error("randFloat should default to the global source")
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
	if len(s.Birds()) != 0 {
		t.Errorf("birds = %d, want 0", len(s.Birds()))
	}
}

func TestSceneNoSpawnWithoutTick(t *testing.T) {
	s, _ := newTestScene(12, 5, 10)
	for range 5 {
		s.Step()
	}
	if len(s.Birds()) != 0 {
		t.Errorf("birds = %d, want 0 while the clock is still", len(s.Birds()))
	}
	if s.Frame() != 5 {
		t.Errorf("Frame() = %d, want 5", s.Frame())
	}
}

func TestSceneSecondTick(t *testing.T) {
	s, clock := newTestScene(12, 5, 10)
	clock.Set(12, 5, 11)
	s.Step()

	birds := s.Birds()
	if len(birds) != 1 {
		t.Fatalf("birds = %d, want 1", len(birds))
	}
	if countVariant(birds, VariantSecond) != 1 || countVariant(birds, VariantMinute) != 0 {
		t.Errorf("variants = %d second / %d minute, want 1 / 0",
			countVariant(birds, VariantSecond), countVariant(birds, VariantMinute))
	}

	l := s.Geometry()
	b := birds[0]
	// Spawned then advanced once in the same frame.
	if !approx(b.X, l.SpawnX+SecondSpeed, 1e-9) {
		t.Errorf("X = %v, want %v", b.X, l.SpawnX+SecondSpeed)
	}
	if !approx(b.FlapPhase, FlapStep, 1e-9) {
		t.Errorf("FlapPhase = %v, want %v", b.FlapPhase, FlapStep)
	}
	if b.Y < l.SpawnBandTop || b.Y >= l.SpawnBandBot {
		t.Errorf("Y = %v, want in [%v, %v)", b.Y, l.SpawnBandTop, l.SpawnBandBot)
	}
}

func TestSceneMinuteRolloverSpawnsBoth(t *testing.T) {
	s, clock := newTestScene(12, 5, 59)
	clock.Set(12, 6, 0)
	s.Step()

	birds := s.Birds()
	if len(birds) != 2 {
		t.Fatalf("birds = %d, want 2", len(birds))
	}
	if countVariant(birds, VariantSecond) != 1 || countVariant(birds, VariantMinute) != 1 {
		t.Errorf("variants = %d second / %d minute, want 1 / 1",
			countVariant(birds, VariantSecond), countVariant(birds, VariantMinute))
	}
}

func TestSceneSpawnsOncePerSecondChange(t *testing.T) {
	s, clock := newTestScene(9, 30, 0)
	// Four frames per second over ten seconds.
	for sec := 0; sec < 10; sec++ {
		clock.Set(9, 30, sec)
		for range 4 {
			s.Step()
		}
	}
	// Second 0 was the initial reading; seconds 1-9 each spawn once.
	if got := countVariant(s.Birds(), VariantSecond); got != 9 {
		t.Errorf("second birds = %d, want 9", got)
	}
	if got := countVariant(s.Birds(), VariantMinute); got != 0 {
		t.Errorf("minute birds = %d, want 0", got)
	}
}

func TestSceneSkippedSecondsNoCatchUp(t *testing.T) {
	s, clock := newTestScene(9, 30, 10)
	clock.Set(9, 30, 14)
	s.Step()
	if len(s.Birds()) != 1 {
		t.Errorf("birds = %d, want 1 after skipping several seconds", len(s.Birds()))
	}
}

func TestSceneBirdXStrictlyIncreases(t *testing.T) {
	s, clock := newTestScene(9, 30, 59)
	clock.Set(9, 31, 0)
	s.Step()

	prev := append([]Bird(nil), s.Birds()...)
	for frame := 0; frame < 100; frame++ {
		s.Step()
		cur := s.Birds()
		if len(cur) != len(prev) {
			t.Fatalf("frame %d: birds = %d, want %d", frame, len(cur), len(prev))
		}
		for i := range cur {
			dx := cur[i].X - prev[i].X
			if dx <= 0 || !approx(dx, cur[i].Variant.Speed(), 1e-9) {
				t.Fatalf("frame %d bird %d: dx = %v, want %v", frame, i, dx, cur[i].Variant.Speed())
			}
			if cur[i].Y != prev[i].Y {
				t.Fatalf("frame %d bird %d: Y changed %v -> %v", frame, i, prev[i].Y, cur[i].Y)
			}
		}
		prev = append(prev[:0], cur...)
	}
}

func TestSceneSecondBirdRemovalFrame(t *testing.T) {
	s, clock := newTestScene(12, 0, 0)
	clock.Set(12, 0, 1)
	l := s.Geometry()
	want := int(math.Ceil((l.Window.Width + 150) / SecondSpeed))

	frames := 0
	for {
		s.Step()
		frames++
		if len(s.Birds()) == 0 || frames > 10*want {
			break
		}
		if b := s.Birds()[0]; b.X > l.ExitX {
			t.Fatalf("frame %d: bird at %v kept past exit %v", frames, b.X, l.ExitX)
		}
	}
	if frames != want {
		t.Errorf("bird removed on frame %d, want %d", frames, want)
	}

	// Removed birds never reappear.
	for range 50 {
		s.Step()
	}
	if len(s.Birds()) != 0 {
		t.Errorf("birds = %d after removal, want 0", len(s.Birds()))
	}
}

func TestSceneUpdateRunsScript(t *testing.T) {
	s, _ := newTestScene(12, 5, 10)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "settime", "hour": 12, "minute": 5, "second": 11}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	s.ExitOnScriptDone = true

	if err := s.Update(); err != nil {
		t.Fatalf("first Update() = %v, want nil", err)
	}
	if len(s.Birds()) != 1 {
		t.Errorf("birds = %d, want 1 after settime tick", len(s.Birds()))
	}
	if got := s.Now(); got != (TimeOfDay{12, 5, 11}) {
		t.Errorf("Now() = %v, want 12:05:11", got)
	}
	if err := s.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("second Update() = %v, want ebiten.Termination", err)
	}
}

func TestSceneUpdateWithoutExit(t *testing.T) {
	s, _ := newTestScene(12, 5, 10)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for range 3 {
		if err := s.Update(); err != nil {
			t.Fatalf("Update() = %v, want nil", err)
		}
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s, _ := newTestScene(12, 0, 0)
	s.SetDebugMode(true)
	if !s.DebugMode() {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.DebugMode() {
		t.Error("debug should be false")
	}
}

func TestSceneSetTimeNeedsFixedClock(t *testing.T) {
	s := NewScene(SceneConfig{})
	s.setTime(1, 2, 3) // logged and ignored, must not panic
	if s.clock != SystemClock {
		t.Error("clock should be unchanged")
	}
}
