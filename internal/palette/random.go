package palette

import (
	"math/rand/v2"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomColor returns a uniformly random color built from six independent hex digits.
func RandomColor() Color {
	return RandomColorFrom(globalSource{})
}

// RandomColorFrom draws a random color from src.
func RandomColorFrom(src Source) Color {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(hexDigits[src.IntN(16)])
	}
	return Color(b.String())
}

// NewSource returns a seeded source, or the shared global source when seed is zero.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
