// Package clock provides an abstraction for time operations to improve testability.
// Entity factories and the repository stamp creation/modification times through
// the Clock interface, which can be mocked in tests to control time-dependent
// behavior.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Fixed is a Clock implementation that always returns the same instant.
// It is intended for tests that assert on stored timestamps.
type Fixed struct {
	Time time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.Time
}

var _ Clock = Fixed{}
