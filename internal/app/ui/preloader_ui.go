package ui

import (
	"math"

	"github.com/arliss/portfolio/internal/app/states"
	"github.com/arliss/portfolio/internal/layout"
)

// PreloaderUI renders the full-screen color cycle.
type PreloaderUI struct {
	state *states.PreloaderState
}

// NewPreloaderUI creates a new preloader UI.
func NewPreloaderUI(state *states.PreloaderState) *PreloaderUI {
	return &PreloaderUI{state: state}
}

// Render draws the background, the hex label and the progress bar.
func (ui *PreloaderUI) Render(s Screen) {
	w, h := s.Size()
	st := ui.state.State()
	screen := layout.Rect{W: w, H: h}

	bg := Style(st.Foreground, st.Background)
	fill(s, screen, bg)

	if label := ui.state.Label(); label != "" {
		textCentered(s, screen, h/2, spaced(label), bg.Bold(true))
	}

	if h < 2 {
		return
	}
	// Bar along the bottom row, filled with the foreground color.
	filled := int(math.Round(ui.state.Bar() / 100 * float64(w)))
	fill(s, layout.Rect{Y: h - 1, W: w, H: 1}, bg.Background(trackColor))
	fill(s, layout.Rect{Y: h - 1, W: filled, H: 1}, bg.Background(Color(st.Foreground)))
}
