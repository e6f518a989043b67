package bench

import "time"

// Clock is the time source of a Harness. Elapsed time is taken as the
// difference of two Now readings, so an implementation backed by time.Now
// measures on the monotonic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock's monotonic component.
type SystemClock struct{}

var _ Clock = SystemClock{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
