package clock

import "time"

// Clock abstracts time lookups so edit timestamps can be controlled in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a test clock that only moves when told to.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a FakeClock starting at the given time.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set moves the clock to the given time.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
