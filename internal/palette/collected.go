package palette

import "fmt"

// Collected is an append-only list of colors with a fixed capacity.
// Adds past the capacity are dropped.
type Collected struct {
	limit  int
	colors []Color
}

// NewCollected creates an empty collection holding at most limit colors.
func NewCollected(limit int) *Collected {
	return &Collected{
		limit:  limit,
		colors: make([]Color, 0, limit),
	}
}

// Add appends c and reports whether it was kept.
func (cc *Collected) Add(c Color) bool {
	if len(cc.colors) >= cc.limit {
		return false
	}
	cc.colors = append(cc.colors, c)
	return true
}

// Len returns the number of collected colors.
func (cc *Collected) Len() int {
	return len(cc.colors)
}

// Colors returns a copy of the collected colors in insertion order.
func (cc *Collected) Colors() []Color {
	out := make([]Color, len(cc.colors))
	copy(out, cc.colors)
	return out
}

// At returns the color at index i, or fallback when fewer than i+1 colors exist.
func (cc *Collected) At(i int, fallback Color) Color {
	if i < 0 || i >= len(cc.colors) {
		return fallback
	}
	return cc.colors[i]
}

// Cycle returns colors[i % len], or fallback when the collection is empty.
func (cc *Collected) Cycle(i int, fallback Color) Color {
	if len(cc.colors) == 0 {
		return fallback
	}
	return cc.colors[i%len(cc.colors)]
}

// CSSVars maps --generated-color-<i> to each collected color.
func (cc *Collected) CSSVars() map[string]string {
	vars := make(map[string]string, len(cc.colors))
	for i, c := range cc.colors {
		vars[fmt.Sprintf("--generated-color-%d", i)] = string(c)
	}
	return vars
}
