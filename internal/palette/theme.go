package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors derived from a preloader run for the landing view.
type Theme struct {
	// Accents are the collected colors, in order.
	Accents []Color
	// Highlight marks the active navigation entry.
	Highlight Color
	// Surface is a faint tint used behind dialogs.
	Surface Color
}

// DeriveTheme builds a Theme from the collected colors. An empty collection yields
// a theme based on Target.
func DeriveTheme(cc *Collected) Theme {
	base := cc.At(0, Target)
	return Theme{
		Accents:   cc.Colors(),
		Highlight: Blend(base, Target, 0.5),
		Surface:   Blend(base, White, 0.85),
	}
}

// Accent returns the i-th accent, cycling, or Black when there are none.
func (t Theme) Accent(i int) Color {
	if len(t.Accents) == 0 {
		return Black
	}
	return t.Accents[i%len(t.Accents)]
}

// Blend mixes a toward b in CIE-L*a*b* space; t=0 yields a, t=1 yields b.
// If either color is malformed, a is returned unchanged.
func Blend(a, b Color, t float64) Color {
	ca, err := colorful.Hex("#" + Normalize(a))
	if err != nil {
		return a
	}
	cb, err := colorful.Hex("#" + Normalize(b))
	if err != nil {
		return a
	}
	return Color(strings.ToUpper(ca.BlendLab(cb, t).Clamped().Hex()))
}
