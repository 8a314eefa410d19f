// Package ui draws the terminal host's states onto a tcell screen.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arliss/portfolio/internal/layout"
	"github.com/arliss/portfolio/internal/palette"
)

// Screen is the subset of tcell.Screen the views draw with.
type Screen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// trackColor is the unfilled part of the progress bar (gray-500 at 30%).
var trackColor = tcell.NewRGBColor(0x3A, 0x3D, 0x42)

// Color converts a palette color; malformed colors become black.
func Color(c palette.Color) tcell.Color {
	r, g, b, ok := c.RGB()
	if !ok {
		return tcell.NewRGBColor(0, 0, 0)
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style builds a style with the given foreground and background.
func Style(fg, bg palette.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}

func fill(s Screen, r layout.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// text draws s starting at (x, y), clipped to maxX. It returns the column after the last rune.
func text(s Screen, x, y, maxX int, str string, style tcell.Style) int {
	for _, r := range str {
		if x >= maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// textCentered draws str centered in r on row y.
func textCentered(s Screen, r layout.Rect, y int, str string, style tcell.Style) {
	n := len([]rune(str))
	x := r.X + (r.W-n)/2
	if x < r.X {
		x = r.X
	}
	text(s, x, y, r.X+r.W, str, style)
}

// wrap splits str into lines no wider than width, breaking on spaces.
func wrap(str string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	word := []rune{}
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	push := func() {
		if len(word) == 0 {
			return
		}
		if len(line) > 0 && len(line)+1+len(word) > width {
			flush()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		for len(word) > width {
			line = append(line, word[:width]...)
			word = word[width:]
			flush()
		}
		line = append(line, word...)
		word = word[:0]
	}
	for _, r := range str {
		switch r {
		case ' ':
			push()
		case '\n':
			push()
			flush()
		default:
			word = append(word, r)
		}
	}
	push()
	flush()
	return lines
}

// spaced inserts a space between runes (tracking-wider).
func spaced(str string) string {
	runes := []rune(str)
	if len(runes) == 0 {
		return ""
	}
	out := make([]rune, 0, len(runes)*2-1)
	for i, r := range runes {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
