package ucc

import "time"

// Clock abstracts the wall clock so that "now" can be injected.
// It is the only point at which the package observes real time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
