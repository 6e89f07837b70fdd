package windowbirds

// Spawner detects clock ticks by comparing each sample with the last
// observed second and minute. Only the most recent value is remembered, so
// boundaries skipped between two frames produce no catch-up spawns.
type Spawner struct {
	lastSecond int
	lastMinute int
}

// NewSpawner returns a Spawner primed with the initial clock sample. The
// first frame spawns nothing unless the clock has moved since.
func NewSpawner(t TimeOfDay) *Spawner {
	return &Spawner{lastSecond: t.Second, lastMinute: t.Minute}
}

// Observe compares t with the last observed values, records t, and reports
// whether the second and minute fields changed. Both may be true in the same
// frame.
func (s *Spawner) Observe(t TimeOfDay) (secondTick, minuteTick bool) {
	if t.Second != s.lastSecond {
		secondTick = true
		s.lastSecond = t.Second
	}
	if t.Minute != s.lastMinute {
		minuteTick = true
		s.lastMinute = t.Minute
	}
	return secondTick, minuteTick
}

// Last returns the last observed second and minute.
func (s *Spawner) Last() (second, minute int) {
	return s.lastSecond, s.lastMinute
}
