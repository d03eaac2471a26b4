// Package clock abstracts time for the audit fields on mutable entities,
// so services can be tested against a deterministic source.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns the current wall time in UTC. Stored timestamps are always
// UTC; presentation-level timezone handling is the caller's concern.
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
