package palette

// luminanceThreshold is intentionally above 0.5 so mid-tones get white text.
const luminanceThreshold = 0.6

// Luminance returns the BT.709 relative luminance of c in [0, 1].
func Luminance(c Color) (float64, bool) {
	r, g, b, ok := c.RGB()
	if !ok {
		return 0, false
	}
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255, true
}

// Contrast returns the text color readable on top of c: White for dark backgrounds,
// Black for light ones. Malformed input yields Black.
func Contrast(c Color) Color {
	l, ok := Luminance(c)
	if !ok {
		return Black
	}
	if l < luminanceThreshold {
		return White
	}
	return Black
}
