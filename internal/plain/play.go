package plain

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

// Play runs one preloader in real time, printing each painted color to w, then prints the
// landing card. Cancelling ctx stops the sequencer and returns ctx.Err().
func Play(ctx context.Context, w io.Writer, cfg *config.Config) error {
	p := NewPrinter(w)
	loop := preloader.NewLoop()
	collected := palette.NewCollected(preloader.Steps)
	finished := make(chan struct{})

	// Only touched on the loop goroutine.
	var printErr error
	seq := preloader.New(loop, preloader.Funcs{
		ColorGenerated: func(c palette.Color) { collected.Add(c) },
		StateChange: func(st preloader.State) {
			if printErr == nil {
				printErr = p.Swatch(st)
			}
		},
		Complete: func() { close(finished) },
	}, preloader.OptionsFrom(cfg))

	runCtx, cancel := context.WithCancel(context.Background())
	ran := make(chan struct{})
	go func() {
		defer close(ran)
		_ = loop.Run(runCtx)
	}()
	defer func() {
		cancel()
		<-ran
	}()

	loop.Post(seq.Start)

	select {
	case <-finished:
	case <-ctx.Done():
		loop.Do(seq.Stop)
		logger.Debug("plain preloader cancelled", zap.Int("colors", collected.Len()))
		return ctx.Err()
	}

	var err error
	loop.Do(func() { err = printErr })
	if err != nil {
		return err
	}
	return p.Landing(content.ProfileFrom(cfg.Profile), collected)
}

// IsCancel reports whether err came from a cancelled Play.
func IsCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
