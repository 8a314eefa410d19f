package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/arliss/portfolio/internal/app/states"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/layout"
	"github.com/arliss/portfolio/internal/palette"
)

var (
	zinc400 = palette.Color("#A1A1AA")
	zinc800 = palette.Color("#27272A")
	navBg   = palette.Color("#18181B")
)

// LandingUI renders the landing view.
type LandingUI struct {
	state *states.LandingState
	geo   layout.Landing
}

// NewLandingUI creates a new landing UI.
func NewLandingUI(state *states.LandingState) *LandingUI {
	return &LandingUI{state: state}
}

// Relayout recomputes geometry from the viewport.
func (ui *LandingUI) Relayout(v layout.Viewport) {
	ui.geo = layout.Compute(v, ui.state.Profile().Name)
}

// Layout returns the current geometry.
func (ui *LandingUI) Layout() layout.Landing {
	return ui.geo
}

// Render draws the landing view.
func (ui *LandingUI) Render(s Screen) {
	if ui.geo.Screen.Empty() {
		ui.Relayout(s)
	}
	geo := ui.geo
	base := Style(palette.Black, palette.White)
	fill(s, geo.Screen, base)

	ui.renderCorners(s, geo.Content, base)
	titleBottom := ui.renderTitle(s, geo, base)
	ui.renderSection(s, layout.Rect{
		X: geo.Content.X + geo.Margin*2,
		Y: titleBottom + 2,
		W: geo.Content.W - geo.Margin*4,
		H: geo.Content.Y + geo.Content.H - titleBottom - 4,
	}, base)

	if !geo.Sidebar.Empty() {
		ui.renderNav(s, geo.Sidebar)
	} else if ui.state.DrawerOpen() {
		ui.renderNav(s, geo.Drawer())
	} else {
		text(s, geo.Screen.W-7, 0, geo.Screen.W, "[m]enu", base.Foreground(Color(zinc400)))
	}

	if d := ui.state.Dialog(); d != nil {
		ui.renderDialog(s, geo.Screen, d)
	}
}

func (ui *LandingUI) renderCorners(s Screen, r layout.Rect, base tcell.Style) {
	p := ui.state.Profile()
	m := ui.geo.Margin
	role := base.Foreground(Color(ui.state.CornerColor(0))).Bold(true)
	text(s, r.X+m*2, r.Y+m, r.X+r.W, upper(p.Role), role)

	tag := upper(p.Tagline)
	tagStyle := base.Foreground(Color(ui.state.CornerColor(1))).Bold(true)
	text(s, r.X+r.W-m*2-len([]rune(tag)), r.Y+r.H-m-1, r.X+r.W, tag, tagStyle)
}

// renderTitle draws the name and returns the row below it.
func (ui *LandingUI) renderTitle(s Screen, geo layout.Landing, base tcell.Style) int {
	name := []rune(ui.state.Profile().Name)
	r := geo.Content

	if !geo.BigTitle {
		y := r.Y + r.H/3
		x := r.X + (r.W-len(name)*2+1)/2
		for i, ch := range name {
			s.SetContent(x+i*2, y, ch, nil, base.Foreground(Color(ui.state.LetterColor(i))).Bold(true))
		}
		return y
	}

	width := layout.BlockWidth(string(name))
	box := r.Center(width, layout.GlyphHeight)
	box.Y = r.Y + max(r.H/3-layout.GlyphHeight/2, 2)
	for i, ch := range name {
		style := base.Foreground(Color(ui.state.LetterColor(i)))
		glyph := layout.Glyph(ch)
		x0 := box.X + layout.GlyphOffset(i)
		for row, line := range glyph {
			for col, px := range line {
				if px == '#' {
					s.SetContent(x0+col, box.Y+row, '█', nil, style)
				}
			}
		}
	}
	return box.Y + layout.GlyphHeight
}

func (ui *LandingUI) renderSection(s Screen, r layout.Rect, base tcell.Style) {
	if r.Empty() {
		return
	}
	sec := ui.state.Section()
	accent := ui.state.Theme().Highlight
	text(s, r.X, r.Y, r.X+r.W, sec.Title(), base.Foreground(Color(accent)).Bold(true))
	y := r.Y + 2
	maxY := r.Y + r.H
	dim := base.Foreground(Color(zinc800))

	line := func(str string, style tcell.Style) {
		for _, l := range wrap(str, r.W) {
			if y >= maxY {
				return
			}
			text(s, r.X, y, r.X+r.W, l, style)
			y++
		}
	}

	p := ui.state.Profile()
	switch sec {
	case content.SectionAbout:
		line(fmt.Sprintf("%s. %s, %s.", p.Name, p.Role, p.Tagline), dim)
	case content.SectionDesigns:
		for i, pat := range ui.state.Patterns() {
			style := dim
			marker := "  "
			if i == ui.state.Selected() {
				style = base.Foreground(Color(ui.state.Theme().Accent(i))).Bold(true)
				marker = "> "
			}
			line(marker+pat.Title+" - "+pat.Description, style)
		}
		y++
		line("enter: open  esc: close", base.Foreground(Color(zinc400)))
	case content.SectionProjects:
		for i, proj := range content.Projects() {
			line(proj.Name, base.Foreground(Color(ui.state.Theme().Accent(i))).Bold(true))
			line("  "+proj.Summary, dim)
		}
	case content.SectionSocials:
		for i, soc := range p.Socials {
			line(fmt.Sprintf("%-10s %s", soc.Name, soc.URL), base.Foreground(Color(ui.state.Theme().Accent(i))))
		}
	}
}

func (ui *LandingUI) renderNav(s Screen, r layout.Rect) {
	bg := Style(palette.White, navBg)
	fill(s, r, bg)

	// Logo: three stacked bars at decreasing opacity.
	for i, c := range []palette.Color{palette.White, palette.Blend(palette.White, navBg, 0.3), palette.Blend(palette.White, navBg, 0.6)} {
		text(s, r.X+3, r.Y+2+i, r.X+r.W, "▀▀▀", bg.Foreground(Color(c)))
	}
	text(s, r.X+7, r.Y+3, r.X+r.W, upper(ui.state.Profile().Name), bg.Bold(true))

	y := r.Y + 7
	for i, sec := range content.Sections {
		style := bg.Foreground(Color(zinc400))
		if sec == ui.state.Section() {
			style = bg.Foreground(Color(palette.White)).Bold(true)
		}
		text(s, r.X+3, y, r.X+r.W, fmt.Sprintf("%d %s", i+1, sec.Title()), style)
		y += 2
	}
}

func (ui *LandingUI) renderDialog(s Screen, screen layout.Rect, d *states.Dialog) {
	box := screen.Center(min(78, screen.W-4), min(20, screen.H-2))
	if box.Empty() {
		return
	}
	bg := Style(palette.Black, ui.state.Theme().Surface)
	fill(s, box, bg)
	drawBorder(s, box, bg)

	inner := box.Inset(2, 1)
	y := inner.Y
	text(s, inner.X, y, inner.X+inner.W, d.Pattern.Title, bg.Bold(true))
	y++
	for _, l := range wrap(d.Pattern.Description, inner.W) {
		text(s, inner.X, y, inner.X+inner.W, l, bg.Foreground(Color(zinc800)))
		y++
	}
	y++

	// Tabs
	x := inner.X
	for _, tab := range []content.PatternTab{content.TabExample, content.TabCode} {
		style := bg.Foreground(Color(zinc400))
		if tab == d.Tab {
			style = bg.Reverse(true).Bold(true)
		}
		x = text(s, x, y, inner.X+inner.W, " "+tab.Title()+" ", style) + 1
	}
	y += 2

	body := d.Pattern.Example
	if d.Tab == content.TabCode {
		body = d.Pattern.Code
	}
	for _, l := range wrap(expandTabs(body), inner.W) {
		if y >= inner.Y+inner.H {
			break
		}
		text(s, inner.X, y, inner.X+inner.W, l, bg)
		y++
	}
}

func drawBorder(s Screen, r layout.Rect, style tcell.Style) {
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
