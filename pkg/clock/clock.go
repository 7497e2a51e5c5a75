package clock

import "time"

// Clock is the source of "now" for anything that depends on wall-clock time
// (strike expiry, open billing periods, default report years).
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
