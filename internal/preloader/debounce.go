package preloader

import "time"

// Debouncer runs fn once, wait after the most recent Trigger.
type Debouncer struct {
	sched Scheduler
	wait  time.Duration
	fn    func()
	timer Timer
}

// NewDebouncer creates a debouncer on sched.
func NewDebouncer(sched Scheduler, wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: sched, wait: wait, fn: fn}
}

// Trigger restarts the wait.
func (d *Debouncer) Trigger() {
	d.Cancel()
	d.timer = d.sched.AfterFunc(d.wait, func() {
		d.timer = nil
		d.fn()
	})
}

// Cancel drops a pending call.
func (d *Debouncer) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
