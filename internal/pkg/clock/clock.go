// Package clock stamps rule updates. Tests pin time with Fixed.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns the wall clock in UTC
func New() Clock {
	return systemClock{}
}

// Fixed always reports the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
