// Package plain prints the preloader and landing card as styled lines, for pipes and
// terminals where the full-screen view is unwanted.
package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/palette"
	"github.com/arliss/portfolio/internal/preloader"
)

const barWidth = 18

var muted = lipgloss.Color("#A1A1AA")

// Printer renders lines for one writer. Styles degrade to plain text when w is not a terminal.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, r: lipgloss.NewRenderer(w)}
}

func (p *Printer) swatch(c palette.Color, fg palette.Color) string {
	return p.r.NewStyle().
		Background(lipgloss.Color(string(c))).
		Foreground(lipgloss.Color(string(fg))).
		Bold(true).
		Padding(0, 1).
		Render(string(c))
}

// Swatch prints one committed preloader state.
func (p *Printer) Swatch(st preloader.State) error {
	filled := barFill(st.Step)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	info := p.r.NewStyle().Foreground(muted).Render(fmt.Sprintf("%d/%d %3.0f%%", st.Step, preloader.Steps, preloader.ProgressFor(st.Step)))
	_, err := fmt.Fprintf(p.w, "%s %s %s\n", p.swatch(st.Background, st.Foreground), bar, info)
	return err
}

// barFill returns the filled cells for step, in [0, barWidth].
func barFill(step int) int {
	return min(max(step, 0)*barWidth/preloader.Steps, barWidth)
}

// Landing prints the landing card colored with the collected colors.
func (p *Printer) Landing(prof content.Profile, cc *palette.Collected) error {
	var title strings.Builder
	for i, r := range prof.Name {
		c := cc.Cycle(i, palette.Black)
		title.WriteString(p.r.NewStyle().Foreground(lipgloss.Color(string(c))).Bold(true).Render(string(r)))
		title.WriteString(" ")
	}

	role := p.r.NewStyle().Foreground(lipgloss.Color(string(cc.At(0, palette.Black)))).Render(strings.ToUpper(prof.Role))
	tag := p.r.NewStyle().Foreground(lipgloss.Color(string(cc.At(1, palette.Black)))).Render(strings.ToUpper(prof.Tagline))

	var sections []string
	for _, s := range content.Sections {
		sections = append(sections, s.Title())
	}
	nav := p.r.NewStyle().Foreground(muted).Render(strings.Join(sections, "  ·  "))

	lines := []string{role, "", strings.TrimSpace(title.String()), "", tag, "", nav}
	for _, s := range prof.Socials {
		lines = append(lines, fmt.Sprintf("%-8s %s", s.Name, s.URL))
	}

	card := p.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(palette.DeriveTheme(cc).Highlight))).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	_, err := fmt.Fprintln(p.w, card)
	return err
}
