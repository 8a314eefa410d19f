// Package app implements the terminal host: the preloader followed by the landing view.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/app/states"
	"github.com/arliss/portfolio/internal/app/ui"
	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

// Ticker is told about every painted preloader color.
type Ticker interface {
	Tick(c palette.Color)
}

type silent struct{}

func (silent) Tick(palette.Color) {}

// App is the terminal host instance.
type App struct {
	config  *config.Config
	screen  tcell.Screen
	loop    *preloader.Loop
	states  *states.Manager
	ticker  Ticker
	resize  *preloader.Debouncer
	log     *zap.Logger
	running bool

	preloaderUI *ui.PreloaderUI
	landingUI   *ui.LandingUI
	uiFor       states.State
}

// New initializes the screen and creates the app. A nil ticker is silent.
func New(cfg *config.Config, screen tcell.Screen, ticker Ticker) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	if ticker == nil {
		ticker = silent{}
	}
	a := &App{
		config: cfg,
		screen: screen,
		loop:   preloader.NewLoop(),
		states: states.NewManager(),
		ticker: ticker,
		log:    logger.Named("app"),
	}
	a.resize = preloader.NewDebouncer(a.loop, cfg.Terminal.ResizeDebounce, a.relayout)
	return a, nil
}

// Run drives the app until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.loop.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.pollEvents(events, quit)

	frame := time.NewTicker(time.Second / time.Duration(a.config.Terminal.FPS))
	defer frame.Stop()

	a.states.Change(states.NewPreloaderState(states.PreloaderStateConfig{
		Options:  preloader.OptionsFrom(a.config),
		Profile:  content.ProfileFrom(a.config.Profile),
		OnCommit: func(st preloader.State) { a.ticker.Tick(st.Background) },
	}, a.loop, a.states))

	a.running = true
	last := time.Now()
	a.log.Info("starting main loop", zap.Int("fps", a.config.Terminal.FPS))

	for a.running {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-a.loop.Tasks():
			fn()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.handleEvent(ev); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		case now := <-frame.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := a.states.Update(dt); err != nil {
				return fmt.Errorf("update error: %w", err)
			}
			a.render()
		}
	}
	return nil
}

// Do runs fn on the app's loop goroutine and waits for it.
func (a *App) Do(fn func()) {
	a.loop.Do(fn)
}

// State returns the current screen state. Call it through Do while Run is active.
func (a *App) State() states.State {
	return a.states.Current()
}

// Close tears down the current state and restores the terminal.
func (a *App) Close() {
	a.log.Info("closing app")
	a.resize.Cancel()
	if err := a.states.Close(); err != nil {
		a.log.Warn("failed to exit state", zap.Error(err))
	}
	a.screen.Fini()
}

func (a *App) pollEvents(out chan<- tcell.Event, quit <-chan struct{}) {
	defer close(out)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize.Trigger()
	case *tcell.EventKey:
		in, ok, quit := translateKey(ev)
		if quit {
			a.running = false
			return nil
		}
		if ok {
			return a.states.HandleInput(in)
		}
	}
	return nil
}

func (a *App) relayout() {
	w, h := a.screen.Size()
	a.log.Debug("relayout", zap.Int("width", w), zap.Int("height", h))
	if a.landingUI != nil {
		a.landingUI.Relayout(a.screen)
	}
}

func (a *App) render() {
	current := a.states.Current()
	if current != a.uiFor {
		a.uiFor = current
		a.preloaderUI, a.landingUI = nil, nil
		switch s := current.(type) {
		case *states.PreloaderState:
			a.preloaderUI = ui.NewPreloaderUI(s)
		case *states.LandingState:
			a.landingUI = ui.NewLandingUI(s)
			a.landingUI.Relayout(a.screen)
		}
	}

	a.screen.Clear()
	switch {
	case a.preloaderUI != nil:
		a.preloaderUI.Render(a.screen)
	case a.landingUI != nil:
		a.landingUI.Render(a.screen)
	}
	a.screen.Show()
}
