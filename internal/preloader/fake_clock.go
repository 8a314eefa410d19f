package preloader

import (
	"sort"
	"time"
)

// FakeClock is a manually advanced Scheduler for tests and offline rendering.
// Callbacks run synchronously inside Advance and Flush.
type FakeClock struct {
	now    time.Time
	seq    int
	timers []*fakeTimer
	posted []func()
}

// NewFakeClock creates a clock starting at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the virtual time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// AfterFunc schedules fn at Now()+d.
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.seq++
	t := &fakeTimer{clock: c, when: c.now.Add(d), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Post queues fn until the next Flush or Advance.
func (c *FakeClock) Post(fn func()) {
	c.posted = append(c.posted, fn)
}

// Flush runs posted callbacks, including ones posted while flushing.
func (c *FakeClock) Flush() {
	for len(c.posted) > 0 {
		fn := c.posted[0]
		c.posted = c.posted[1:]
		fn()
	}
}

// Advance flushes posted work, then moves time forward by d firing every timer that
// comes due, in deadline order. Work posted by a timer that fires exactly at the end of
// the interval stays queued until the next Flush or Advance, so callers observe the
// state as of that instant.
func (c *FakeClock) Advance(d time.Duration) {
	c.Flush()
	end := c.now.Add(d)
	for {
		t := c.nextDue(end)
		if t == nil {
			break
		}
		c.remove(t)
		if t.when.After(c.now) {
			c.now = t.when
		}
		t.fn()
		if c.now.Before(end) {
			c.Flush()
		}
	}
	c.now = end
}

// Pending returns the number of armed timers.
func (c *FakeClock) Pending() int {
	return len(c.timers)
}

func (c *FakeClock) nextDue(end time.Time) *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].when.Equal(c.timers[j].when) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].when.Before(c.timers[j].when)
	})
	if c.timers[0].when.After(end) {
		return nil
	}
	return c.timers[0]
}

func (c *FakeClock) remove(t *fakeTimer) bool {
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type fakeTimer struct {
	clock *FakeClock
	when  time.Time
	seq   int
	fn    func()
}

func (t *fakeTimer) Stop() bool {
	return t.clock.remove(t)
}
