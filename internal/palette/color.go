// Package palette provides the hex colors used across the portfolio:
// random swatches, readable foregrounds and the colors collected during the preloader.
package palette

import (
	"strconv"
	"strings"
)

// Color is a "#RRGGBB" hex color. Values produced by this package are always uppercase.
type Color string

// Fixed colors.
const (
	Black Color = "#000000"
	White Color = "#FFFFFF"

	// Target is the color the preloader settles on before handing over to the landing view.
	Target Color = "#7CABCE"
)

// Normalize strips a leading '#', expands 3-digit shorthand and uppercases the digits.
// The returned string has no '#' and is not guaranteed to be 6 digits long.
func Normalize(c Color) string {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return strings.ToUpper(hex)
}

// Parse returns the canonical form of s, or false when s is not a 3 or 6 digit hex color.
func Parse(s string) (Color, bool) {
	hex := Normalize(Color(strings.TrimSpace(s)))
	if len(hex) != 6 {
		return "", false
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", false
	}
	return Color("#" + hex), true
}

// RGB returns the 8-bit channels of c. ok is false for malformed colors.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	hex := Normalize(c)
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// Valid reports whether c parses as a hex color.
func (c Color) Valid() bool {
	_, _, _, ok := c.RGB()
	return ok
}

func (c Color) String() string {
	return string(c)
}
