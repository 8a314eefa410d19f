package preloader

import (
	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/palette"
)

// OptionsFrom builds sequencer options from the preloader config section.
// Each call returns a fresh random source so runs never share state.
func OptionsFrom(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg.Preloader.CycleDuration > 0 {
		opts.CycleDuration = cfg.Preloader.CycleDuration
	}
	if cfg.Preloader.FinalDisplayDuration > 0 {
		opts.FinalDisplayDuration = cfg.Preloader.FinalDisplayDuration
	}
	opts.Target = cfg.Target()
	opts.NotifyBeforeCommit = cfg.Preloader.NotifyBeforeCommit
	opts.Source = palette.NewSource(cfg.Preloader.Seed)
	return opts
}
