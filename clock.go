package windowbirds

import "time"

// Clock provides the wall-clock reading the scene samples each frame.
// This interface allows for testing with deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a settable clock. It always returns the last time set.
// The scripted test runner drives it through "settime" steps.
type FixedClock struct {
	t time.Time
}

// NewFixedClock returns a FixedClock reading hour:minute:second.
func NewFixedClock(hour, minute, second int) *FixedClock {
	c := &FixedClock{}
	c.Set(hour, minute, second)
	return c
}

// Now returns the stored time.
func (c *FixedClock) Now() time.Time {
	return c.t
}

// Set moves the clock to hour:minute:second on a fixed calendar day.
func (c *FixedClock) Set(hour, minute, second int) {
	c.t = time.Date(2000, time.January, 1, hour, minute, second, 0, time.UTC)
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// Day/night hour bounds. Hours in [DayStartHour, DayEndHour) are day.
const (
	DayStartHour = 6
	DayEndHour   = 18
)

// TimeOfDay is a single clock sample. Hour is 0-23, Minute and Second 0-59.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// Sample reads the current time of day from c.
func Sample(c Clock) TimeOfDay {
	now := c.Now()
	return TimeOfDay{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}
}

// IsDay reports whether the hour falls in the daytime band.
func (t TimeOfDay) IsDay() bool {
	return t.Hour >= DayStartHour && t.Hour < DayEndHour
}

// Fraction returns the fractional hour of the day in [0, 24).
func (t TimeOfDay) Fraction() float64 {
	return float64(t.Hour) + float64(t.Minute)/60 + float64(t.Second)/3600
}
