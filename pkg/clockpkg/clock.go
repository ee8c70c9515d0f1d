// Package clockpkg provides the wall clock as an injectable capability.
package clockpkg

import "time"

// Clock supplies the current time to services that stamp entities.
type Clock interface {
	Now() time.Time
}

// Real reads the system wall clock in UTC.
type Real struct{}

// Now returns the current time in UTC.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock frozen at a single instant for deterministic tests.
type Fixed struct {
	T time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.T
}
