package preloader

import (
	"time"

	"github.com/arliss/portfolio/internal/palette"
)

// Fixed sequence parameters.
const (
	// Steps is the number of random colors shown before the target color.
	Steps = 9

	CycleDuration        = 350 * time.Millisecond
	FinalDisplayDuration = 400 * time.Millisecond
)

// State is the visible state of the preloader.
type State struct {
	Step       int
	Background palette.Color
	Foreground palette.Color
}

// Listener receives the two host notifications.
type Listener interface {
	// OnColorGenerated is called once per random step.
	OnColorGenerated(c palette.Color)
	// OnComplete is called exactly once, after the target color has been held.
	OnComplete()
}

// StateObserver is optionally implemented by a Listener that wants every committed state.
type StateObserver interface {
	OnStateChange(s State)
}

// Funcs adapts plain functions to Listener and StateObserver. Nil fields are ignored.
type Funcs struct {
	ColorGenerated func(palette.Color)
	Complete       func()
	StateChange    func(State)
}

// OnColorGenerated calls ColorGenerated.
func (f Funcs) OnColorGenerated(c palette.Color) {
	if f.ColorGenerated != nil {
		f.ColorGenerated(c)
	}
}

// OnComplete calls Complete.
func (f Funcs) OnComplete() {
	if f.Complete != nil {
		f.Complete()
	}
}

// OnStateChange calls StateChange.
func (f Funcs) OnStateChange(s State) {
	if f.StateChange != nil {
		f.StateChange(s)
	}
}

// Options tune a Sequencer. The zero value is not usable; start from DefaultOptions.
type Options struct {
	CycleDuration        time.Duration
	FinalDisplayDuration time.Duration
	Target               palette.Color

	// NotifyBeforeCommit announces each color when its step begins, one cycle before it
	// becomes the background. When false the announcement coincides with the commit.
	NotifyBeforeCommit bool

	// Source draws the random colors. Nil uses the shared generator.
	Source palette.Source
}

// DefaultOptions returns the standard timing and target.
func DefaultOptions() Options {
	return Options{
		CycleDuration:        CycleDuration,
		FinalDisplayDuration: FinalDisplayDuration,
		Target:               palette.Target,
		NotifyBeforeCommit:   true,
	}
}

// Sequencer steps through Steps random background colors, then holds the target color and
// reports completion. It owns at most one pending timer. All methods must be called from the
// scheduler's goroutine.
type Sequencer struct {
	sched    Scheduler
	listener Listener
	observer StateObserver
	opts     Options

	state State
	timer Timer
	bar   Tween

	started bool
	stopped bool
	done    bool
}

// New creates a sequencer in its initial state. Nothing runs until Start.
func New(sched Scheduler, l Listener, opts Options) *Sequencer {
	if l == nil {
		l = Funcs{}
	}
	if opts.Source == nil {
		opts.Source = palette.NewSource(0)
	}
	if !opts.Target.Valid() {
		opts.Target = palette.Target
	}
	obs, _ := l.(StateObserver)

	return &Sequencer{
		sched:    sched,
		listener: l,
		observer: obs,
		opts:     opts,
		state: State{
			Background: palette.Black,
			Foreground: palette.White,
		},
	}
}

// Start runs the first step. Subsequent calls do nothing.
func (s *Sequencer) Start() {
	if s.started {
		return
	}
	s.started = true
	s.runStep()
}

// Stop cancels the pending timer. No listener method is called afterwards.
func (s *Sequencer) Stop() {
	s.stopped = true
	s.clearTimer()
}

// State returns the current state.
func (s *Sequencer) State() State {
	return s.state
}

// Progress returns the completion percentage for the current step.
func (s *Sequencer) Progress() float64 {
	return ProgressFor(s.state.Step)
}

// Bar returns the animated progress bar width in percent at the scheduler's current time.
func (s *Sequencer) Bar() float64 {
	return s.bar.Value(s.sched.Now())
}

// Done reports whether OnComplete has been delivered.
func (s *Sequencer) Done() bool {
	return s.done
}

// Stopped reports whether the sequencer was torn down.
func (s *Sequencer) Stopped() bool {
	return s.stopped
}

// Pending reports whether a timer is armed.
func (s *Sequencer) Pending() bool {
	return s.timer != nil
}

// runStep is the body of the current step. It runs once per step change.
func (s *Sequencer) runStep() {
	if s.stopped || s.done {
		return
	}
	s.clearTimer()

	switch {
	case s.state.Step < Steps:
		c := palette.RandomColorFrom(s.opts.Source)
		if s.opts.NotifyBeforeCommit {
			s.listener.OnColorGenerated(c)
		}
		s.arm(s.opts.CycleDuration, func() {
			if !s.opts.NotifyBeforeCommit {
				s.listener.OnColorGenerated(c)
			}
			s.commit(c, s.state.Step+1)
			s.sched.Post(s.runStep)
		})

	case s.state.Step == Steps:
		s.commit(s.opts.Target, s.state.Step)
		s.arm(s.opts.FinalDisplayDuration, func() {
			s.done = true
			s.listener.OnComplete()
		})
	}
}

func (s *Sequencer) commit(bg palette.Color, step int) {
	s.state.Background = bg
	s.state.Foreground = palette.Contrast(bg)
	if step != s.state.Step {
		s.state.Step = step
		s.bar.Retarget(s.sched.Now(), ProgressFor(step), s.opts.CycleDuration)
	}
	if s.observer != nil {
		s.observer.OnStateChange(s.state)
	}
}

func (s *Sequencer) arm(d time.Duration, fn func()) {
	s.clearTimer()
	s.timer = s.sched.AfterFunc(d, func() {
		s.timer = nil
		if s.stopped {
			return
		}
		fn()
	})
}

func (s *Sequencer) clearTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
