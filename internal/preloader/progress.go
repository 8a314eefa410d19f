package preloader

import "time"

// ProgressFor returns min(100, step/Steps*100).
func ProgressFor(step int) float64 {
	p := float64(step) / float64(Steps) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Tween moves linearly from one value to another over a duration.
type Tween struct {
	from  float64
	to    float64
	start time.Time
	dur   time.Duration
}

// Retarget starts a new segment at now from the current value toward to.
func (t *Tween) Retarget(now time.Time, to float64, dur time.Duration) {
	t.from = t.Value(now)
	t.to = to
	t.start = now
	t.dur = dur
}

// Value returns the interpolated value at now.
func (t Tween) Value(now time.Time) float64 {
	if t.dur <= 0 {
		return t.to
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.dur {
		return t.to
	}
	if elapsed <= 0 {
		return t.from
	}
	return t.from + (t.to-t.from)*float64(elapsed)/float64(t.dur)
}

// Target returns the value the tween is heading to.
func (t Tween) Target() float64 {
	return t.to
}
