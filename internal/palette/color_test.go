package palette

import (
	"math/rand/v2"
	"regexp"
	"testing"
)

var canonical = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestRandomColorFormat(t *testing.T) {
	for i := 0; i < 10000; i++ {
		c := RandomColor()
		if !canonical.MatchString(string(c)) {
			t.Fatalf("RandomColor() = %q, not canonical", c)
		}
	}
}

func TestRandomColorDigitDistribution(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))
	const draws = 20000

	var counts [6][16]int
	for i := 0; i < draws; i++ {
		c := RandomColorFrom(src)
		for pos := 0; pos < 6; pos++ {
			d := c[pos+1]
			switch {
			case d >= '0' && d <= '9':
				counts[pos][d-'0']++
			default:
				counts[pos][d-'A'+10]++
			}
		}
	}

	// Expected 1250 per digit per position; allow a wide band.
	for pos := range counts {
		for digit, n := range counts[pos] {
			if n < 1000 || n > 1500 {
				t.Errorf("position %d digit %X drawn %d times, expected ~1250", pos, digit, n)
			}
		}
	}
}

func TestRandomColorIndependentDraws(t *testing.T) {
	seen := make(map[Color]struct{})
	for i := 0; i < 1000; i++ {
		seen[RandomColor()] = struct{}{}
	}
	// 1000 draws out of 16.7M values should almost never collide.
	if len(seen) < 990 {
		t.Errorf("expected ~1000 distinct colors, got %d", len(seen))
	}
}

func TestNewSourceSeeded(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 10; i++ {
		if ca, cb := RandomColorFrom(a), RandomColorFrom(b); ca != cb {
			t.Fatalf("same seed diverged at draw %d: %s vs %s", i, ca, cb)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"#7cabce", "#7CABCE", true},
		{"7CABCE", "#7CABCE", true},
		{"#abc", "#AABBCC", true},
		{" #FFF ", "#FFFFFF", true},
		{"#12", "", false},
		{"#1234567", "", false},
		{"#XYZXYZ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRGB(t *testing.T) {
	r, g, b, ok := Target.RGB()
	if !ok || r != 0x7C || g != 0xAB || b != 0xCE {
		t.Errorf("Target.RGB() = %d,%d,%d ok=%v", r, g, b, ok)
	}
}
