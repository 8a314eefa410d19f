// Package preloader implements the timed color-cycling sequence shown before the landing view.
package preloader

import "time"

// Timer is a pending delayed callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call stopped it.
	Stop() bool
}

// Scheduler delivers callbacks on a single goroutine.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// AfterFunc runs fn after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer

	// Post runs fn on the next turn, after the current callback returns.
	Post(fn func())
}
