package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/arliss/portfolio/internal/app/states"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/layout"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

type cell struct {
	r     rune
	style tcell.Style
}

// grid is an in-memory Screen.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]cell, w*h)}
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, style: style}
}

func (g *grid) at(x, y int) cell {
	return g.cells[y*g.w+x]
}

func (g *grid) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		r := g.at(x, y).r
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (g *grid) text() string {
	rows := make([]string, g.h)
	for y := range rows {
		rows[y] = g.row(y)
	}
	return strings.Join(rows, "\n")
}

func bg(c cell) tcell.Color {
	_, b, _ := c.style.Decompose()
	return b
}

func fg(c cell) tcell.Color {
	f, _, _ := c.style.Decompose()
	return f
}

type fixedSource struct{ n int }

func (s *fixedSource) IntN(int) int { return s.n }

func TestColor(t *testing.T) {
	tests := []struct {
		in   palette.Color
		want tcell.Color
	}{
		{palette.Target, tcell.NewRGBColor(0x7C, 0xAB, 0xCE)},
		{"#fff", tcell.NewRGBColor(0xFF, 0xFF, 0xFF)},
		{"bogus", tcell.NewRGBColor(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := Color(tt.in); got != tt.want {
				t.Errorf("Color(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrap = %q, want %q", got, want)
	}

	got = wrap("abcdefghijkl", 5)
	if strings.Join(got, "|") != "abcde|fghij|kl" {
		t.Errorf("wrap long word = %q", got)
	}

	if len(wrap("anything", 0)) != 0 {
		t.Error("wrap with zero width should be empty")
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("#7CA"); got != "# 7 C A" {
		t.Errorf("spaced = %q", got)
	}
	if spaced("") != "" {
		t.Error("spaced empty")
	}
}

func newPreloader(t *testing.T) (*states.PreloaderState, *preloader.FakeClock) {
	t.Helper()
	clock := preloader.NewFakeClock(time.Unix(0, 0))
	opts := preloader.DefaultOptions()
	opts.Source = &fixedSource{n: 0}
	m := states.NewManager()
	ps := states.NewPreloaderState(states.PreloaderStateConfig{Options: opts}, clock, m)
	m.Change(ps)
	if err := m.Update(0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	return ps, clock
}

func TestPreloaderUIRender(t *testing.T) {
	ps, clock := newPreloader(t)
	ui := NewPreloaderUI(ps)

	g := newGrid(40, 10)
	ui.Render(g)
	if bg(g.at(0, 0)) != Color(palette.Black) {
		t.Errorf("initial background = %v, want black", bg(g.at(0, 0)))
	}
	if strings.TrimSpace(g.row(5)) != "" {
		t.Errorf("label before first commit = %q, want empty", g.row(5))
	}

	clock.Advance(preloader.CycleDuration)
	g = newGrid(40, 10)
	ui.Render(g)

	// Source always yields digit 0.
	if bg(g.at(0, 0)) != Color("#000000") {
		t.Errorf("background after commit = %v", bg(g.at(0, 0)))
	}
	if !strings.Contains(g.row(5), "# 0 0 0 0 0 0") {
		t.Errorf("label row = %q", g.row(5))
	}
	if fg(g.at(20, 5)) != Color(palette.White) {
		t.Errorf("label color = %v, want white", fg(g.at(20, 5)))
	}
	if bg(g.at(39, 9)) != trackColor {
		t.Errorf("unfilled bar end = %v, want track", bg(g.at(39, 9)))
	}
}

func TestPreloaderUIBarFull(t *testing.T) {
	ps, clock := newPreloader(t)
	ui := NewPreloaderUI(ps)
	for i := 0; i < preloader.Steps; i++ {
		clock.Advance(preloader.CycleDuration)
	}
	clock.Flush()
	clock.Advance(preloader.CycleDuration)

	g := newGrid(20, 5)
	ui.Render(g)
	st := ps.State()
	if st.Background != palette.Target {
		t.Fatalf("background = %s, want target", st.Background)
	}
	for x := 0; x < 20; x++ {
		if got := bg(g.at(x, 4)); got != Color(st.Foreground) {
			t.Fatalf("bar cell %d = %v, want foreground", x, got)
		}
	}
}

func newLanding(t *testing.T, colors ...palette.Color) *states.LandingState {
	t.Helper()
	cc := palette.NewCollected(preloader.Steps)
	for _, c := range colors {
		cc.Add(c)
	}
	p := content.Profile{Name: "ARLISS", Role: "Software Engineer", Tagline: "Web Design"}
	return states.NewLandingState(states.LandingStateConfig{Profile: p, Collected: cc}, states.NewManager())
}

func TestLandingUIWide(t *testing.T) {
	red, blue := palette.Color("#FF0000"), palette.Color("#0000FF")
	ls := newLanding(t, red, blue)
	ui := NewLandingUI(ls)
	g := newGrid(140, 40)
	ui.Relayout(g)
	ui.Render(g)

	if ui.Layout().Sidebar.Empty() {
		t.Fatal("wide viewport should have a sidebar")
	}
	out := g.text()
	for _, want := range []string{"SOFTWARE ENGINEER", "WEB DESIGN", "ABOUT ME", "SOCIALS"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if strings.Contains(out, "[m]enu") {
		t.Error("menu hint shown with sidebar")
	}

	// Block letters alternate between the two collected colors.
	var letters []tcell.Color
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			if c := g.at(x, y); c.r == '█' {
				if len(letters) == 0 || letters[len(letters)-1] != fg(c) {
					letters = append(letters, fg(c))
				}
				break
			}
		}
	}
	if len(letters) < 2 || letters[0] != Color(red) || letters[1] != Color(blue) {
		t.Errorf("letter colors = %v", letters)
	}
}

func TestLandingUINarrowDrawer(t *testing.T) {
	ls := newLanding(t)
	ui := NewLandingUI(ls)
	g := newGrid(60, 24)
	ui.Relayout(g)
	ui.Render(g)

	out := g.text()
	if !strings.Contains(out, "[m]enu") {
		t.Error("narrow view should show the menu hint")
	}
	if strings.Contains(out, "SOCIALS") {
		t.Error("drawer should be closed")
	}

	ls.HandleInput(states.InputEvent{Action: states.ActionToggleMenu})
	g = newGrid(60, 24)
	ui.Render(g)
	if !strings.Contains(g.text(), "SOCIALS") {
		t.Error("drawer should list sections once opened")
	}
}

func TestLandingUIDialog(t *testing.T) {
	ls := newLanding(t, "#123456")
	ui := NewLandingUI(ls)
	ls.HandleInput(states.InputEvent{Action: states.ActionJumpSection, Index: 1})
	ls.HandleInput(states.InputEvent{Action: states.ActionOpen})

	g := newGrid(120, 40)
	ui.Relayout(layout.Fixed{W: 120, H: 40})
	ui.Render(g)
	d := ls.Dialog()
	if d == nil {
		t.Fatal("dialog not open")
	}
	out := g.text()
	for _, want := range []string{d.Pattern.Title, " Example ", " Code "} {
		if !strings.Contains(out, want) {
			t.Errorf("dialog missing %q", want)
		}
	}
}
