package app

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/arliss/portfolio/internal/app/states"
	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

type tickRecorder struct {
	colors []palette.Color
}

func (r *tickRecorder) Tick(c palette.Color) {
	r.colors = append(r.colors, c)
}

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Preloader.CycleDuration = time.Millisecond
	cfg.Preloader.FinalDisplayDuration = time.Millisecond
	cfg.Terminal.FPS = 200
	cfg.Terminal.ResizeDebounce = time.Millisecond
	return cfg
}

// eventually polls cond on the app loop until it holds or the deadline passes.
func eventually(t *testing.T, a *App, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var ok bool
		a.Do(func() { ok = cond() })
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestAppRunsPreloaderThenLanding(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	rec := &tickRecorder{}
	a, err := New(fastConfig(), screen, rec)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	screen.SetSize(120, 40)

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	var landing *states.LandingState
	eventually(t, a, "landing state", func() bool {
		landing, _ = a.State().(*states.LandingState)
		return landing != nil
	})

	var ticks []palette.Color
	a.Do(func() { ticks = append(ticks, rec.colors...) })
	if len(ticks) != preloader.Steps+1 {
		t.Fatalf("ticks = %d, want %d", len(ticks), preloader.Steps+1)
	}
	if ticks[len(ticks)-1] != palette.Target {
		t.Errorf("last tick = %s, want target", ticks[len(ticks)-1])
	}

	screen.InjectKey(tcell.KeyRune, '2', tcell.ModNone)
	eventually(t, a, "designs section", func() bool {
		return landing.Section() == content.SectionDesigns
	})

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestAppStopsOnContextCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := fastConfig()
	cfg.Preloader.CycleDuration = time.Hour
	a, err := New(cfg, screen, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	var ps *states.PreloaderState
	eventually(t, a, "preloader state", func() bool {
		ps, _ = a.State().(*states.PreloaderState)
		return ps != nil
	})
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}

	a.Close()
	if !ps.Sequencer().Stopped() {
		t.Error("sequencer still running after Close")
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want states.InputEvent
		ok   bool
		quit bool
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), states.InputEvent{}, false, true},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), states.InputEvent{}, false, true},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), states.InputEvent{Action: states.ActionBack}, true, false},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), states.InputEvent{Action: states.ActionNextSection}, true, false},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), states.InputEvent{Action: states.ActionPrevSection}, true, false},
		{"3", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), states.InputEvent{Action: states.ActionJumpSection, Index: 2}, true, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), states.InputEvent{Action: states.ActionOpen}, true, false},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), states.InputEvent{Action: states.ActionToggleMenu}, true, false},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), states.InputEvent{}, false, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), states.InputEvent{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, quit := translateKey(tt.ev)
			if got != tt.want || ok != tt.ok || quit != tt.quit {
				t.Errorf("translateKey = %+v, %v, %v; want %+v, %v, %v", got, ok, quit, tt.want, tt.ok, tt.quit)
			}
		})
	}
}
