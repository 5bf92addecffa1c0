// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant. Save timestamps written under a
// Fixed clock are reproducible.
type Fixed struct {
	at time.Time
}

// NewFixed returns a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{at: t}
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.at
}

// Set moves the fixed instant
func (c *Fixed) Set(t time.Time) {
	c.at = t
}
