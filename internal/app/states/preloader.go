package states

import (
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

// PreloaderStateConfig contains configuration for the preloader state.
type PreloaderStateConfig struct {
	Options preloader.Options
	Profile content.Profile

	// OnCommit is called whenever a new background is painted.
	OnCommit func(preloader.State)
}

// PreloaderState plays the color sequence and hands the collected colors to the landing state.
type PreloaderState struct {
	config  PreloaderStateConfig
	sched   preloader.Scheduler
	manager *Manager
	log     *zap.Logger

	seq       *preloader.Sequencer
	collected *palette.Collected
}

// NewPreloaderState creates a new preloader state.
func NewPreloaderState(cfg PreloaderStateConfig, sched preloader.Scheduler, manager *Manager) *PreloaderState {
	return &PreloaderState{
		config:  cfg,
		sched:   sched,
		manager: manager,
		log:     logger.Named("preloader"),
	}
}

// Enter mounts a fresh sequencer.
func (s *PreloaderState) Enter() error {
	s.collected = palette.NewCollected(preloader.Steps)
	s.seq = preloader.New(s.sched, s, s.config.Options)
	s.log.Info("entering PreloaderState",
		zap.Duration("cycle", s.config.Options.CycleDuration),
		zap.Bool("notifyBeforeCommit", s.config.Options.NotifyBeforeCommit))
	s.seq.Start()
	return nil
}

// Exit tears the sequencer down so no stale timer fires.
func (s *PreloaderState) Exit() error {
	if s.seq != nil {
		s.seq.Stop()
	}
	return nil
}

// Update is called every frame.
func (s *PreloaderState) Update(dt float64) error {
	return nil
}

// HandleInput ignores input; the preloader cannot be skipped.
func (s *PreloaderState) HandleInput(event interface{}) error {
	return nil
}

// OnColorGenerated collects the announced color.
func (s *PreloaderState) OnColorGenerated(c palette.Color) {
	kept := s.collected.Add(c)
	s.log.Debug("color generated", zap.Stringer("color", c), zap.Bool("kept", kept))
}

// OnStateChange forwards committed states.
func (s *PreloaderState) OnStateChange(st preloader.State) {
	if s.config.OnCommit != nil {
		s.config.OnCommit(st)
	}
}

// OnComplete swaps to the landing view.
func (s *PreloaderState) OnComplete() {
	s.log.Info("preloader complete", zap.Int("colors", s.collected.Len()))
	s.manager.Change(NewLandingState(LandingStateConfig{
		Profile:   s.config.Profile,
		Collected: s.collected,
	}, s.manager))
}

// State returns the sequencer state.
func (s *PreloaderState) State() preloader.State {
	if s.seq == nil {
		return preloader.State{Background: palette.Black, Foreground: palette.White}
	}
	return s.seq.State()
}

// Label returns the hex code to display, empty before the first commit.
func (s *PreloaderState) Label() string {
	st := s.State()
	if st.Step == 0 {
		return ""
	}
	return string(st.Background)
}

// Bar returns the animated progress bar width in percent.
func (s *PreloaderState) Bar() float64 {
	if s.seq == nil {
		return 0
	}
	return s.seq.Bar()
}

// Collected returns the colors gathered so far.
func (s *PreloaderState) Collected() *palette.Collected {
	return s.collected
}

// Sequencer exposes the running sequencer.
func (s *PreloaderState) Sequencer() *preloader.Sequencer {
	return s.seq
}
