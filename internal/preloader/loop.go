package preloader

import (
	"context"
	"sync"
	"time"
)

// Loop is a real-time Scheduler. Every callback runs on the goroutine draining the loop,
// either through Run or by a host receiving from Tasks.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Now returns the wall clock with its monotonic reading.
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Post queues fn. It is dropped once the loop is closed.
func (l *Loop) Post(fn func()) {
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Do runs fn on the loop and waits for it to return, or for the loop to close.
func (l *Loop) Do(fn func()) {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
	case <-l.done:
	}
}

// AfterFunc arms a timer whose callback is delivered through the loop.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			// Stop may have run after the timer fired but before this task was drained.
			if t.stopped {
				return
			}
			fn()
		})
	})
	return t
}

// Tasks exposes the queue for hosts that multiplex the loop with their own events.
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Run drains tasks until ctx is cancelled, then closes the loop.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops accepting tasks. Pending timers become no-ops.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed when the loop closes.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

type loopTimer struct {
	timer *time.Timer
	// only touched on the loop goroutine
	stopped bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
