// Package clock abstracts time so offer-window checks are deterministic
// in tests.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is the production clock.
type System struct{}

// NewSystem creates a Clock backed by the system time.
func NewSystem() Clock {
	return System{}
}

// Now returns the current system time in UTC.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a controllable clock for tests.
type Fixed struct {
	current time.Time
}

// NewFixed creates a clock pinned to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// Now returns the pinned time.
func (f *Fixed) Now() time.Time {
	return f.current
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.current = t
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
