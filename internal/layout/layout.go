// Package layout turns a viewport size into the landing view geometry.
package layout

// Viewport reports the current drawable size in cells. tcell.Screen satisfies it.
type Viewport interface {
	Size() (width, height int)
}

// Fixed is a Viewport of constant size.
type Fixed struct {
	W, H int
}

func (f Fixed) Size() (int, int) { return f.W, f.H }

// Breakpoint is a responsive width class.
type Breakpoint int

const (
	Base Breakpoint = iota
	SM
	MD
	LG
	XL
)

// pxPerCell approximates one terminal column in CSS pixels.
const pxPerCell = 8

var minWidthPx = [...]int{Base: 0, SM: 640, MD: 768, LG: 1024, XL: 1280}

// BreakpointFor returns the widest breakpoint whose minimum fits cols.
func BreakpointFor(cols int) Breakpoint {
	px := cols * pxPerCell
	bp := Base
	for b := SM; b <= XL; b++ {
		if px >= minWidthPx[b] {
			bp = b
		}
	}
	return bp
}

func (b Breakpoint) String() string {
	switch b {
	case SM:
		return "sm"
	case MD:
		return "md"
	case LG:
		return "lg"
	case XL:
		return "xl"
	default:
		return "base"
	}
}

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks r by dx columns and dy rows on each side.
func (r Rect) Inset(dx, dy int) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Center returns a w×h rectangle centered in r, clipped to r.
func (r Rect) Center(w, h int) Rect {
	w = min(w, r.W)
	h = min(h, r.H)
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// SidebarWidth is the fixed navigation width on wide viewports (w-64).
const SidebarWidth = 32

// Landing is the computed geometry of the landing view.
type Landing struct {
	Breakpoint Breakpoint
	Screen     Rect
	// Sidebar is empty on narrow viewports, where navigation lives in a drawer.
	Sidebar Rect
	Content Rect
	// Margin is the corner text inset (top-4 / md:top-8).
	Margin int
	// BigTitle selects the block-letter title.
	BigTitle bool
}

// Compute derives the landing geometry from the viewport for the given title.
func Compute(v Viewport, title string) Landing {
	w, h := v.Size()
	bp := BreakpointFor(w)
	l := Landing{
		Breakpoint: bp,
		Screen:     Rect{W: w, H: h},
		Margin:     1,
	}
	if bp >= MD {
		l.Margin = 2
		l.Sidebar = Rect{W: SidebarWidth, H: h}
		l.Content = Rect{X: SidebarWidth, W: w - SidebarWidth, H: h}
	} else {
		l.Content = l.Screen
	}
	l.BigTitle = bp >= SM && l.Content.W >= BlockWidth(title)+4 && h >= GlyphHeight+6
	return l
}

// Drawer returns the drawer rectangle on narrow viewports (w-64, clipped).
func (l Landing) Drawer() Rect {
	return Rect{W: min(SidebarWidth, l.Screen.W), H: l.Screen.H}
}
