package qasm3

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatFloatFolding(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		fold bool
		want string
	}{
		{"pi", math.Pi, true, "pi"},
		{"minus pi", -math.Pi, true, "-pi"},
		{"two pi", 2 * math.Pi, true, "2*pi"},
		{"minus five pi", -5 * math.Pi, true, "-5*pi"},
		{"half pi", math.Pi / 2, true, "pi/2"},
		{"minus half pi", -math.Pi / 2, true, "-pi/2"},
		{"three quarter pi", 3 * math.Pi / 4, true, "3*pi/4"},
		{"plain decimal", 0.3, true, "0.3"},
		{"zero", 0, true, "0"},
		{"two pi unfolded", 2 * math.Pi, false, "6.283185307179586"},
		{"pi unfolded", math.Pi, false, "3.141592653589793"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatFloat(tc.v, tc.fold); got != tc.want {
				t.Fatalf("formatFloat(%v, %v) = %q, want %q", tc.v, tc.fold, got, tc.want)
			}
		})
	}
}

func TestFoldPiRejectsNonMultiples(t *testing.T) {
	for _, v := range []float64{0.1, 1, math.E, math.Pi * 1.0001, math.Inf(1), math.NaN()} {
		if s, ok := foldPi(v); ok {
			t.Fatalf("foldPi(%v) unexpectedly folded to %q", v, s)
		}
	}
}

func TestFoldPiRejectsHugeMultipliers(t *testing.T) {
	// Multipliers at or beyond 2^63 do not fit int64; such values must fall
	// back to decimal rendering rather than producing a garbage multiplier.
	huge := []float64{
		math.Ldexp(1, 64) * math.Pi,
		-math.Ldexp(1, 65) * math.Pi,
	}
	for _, v := range huge {
		if s, ok := foldPi(v); ok {
			t.Fatalf("foldPi(%g) unexpectedly folded to %q", v, s)
		}
		want := strconv.FormatFloat(v, 'g', -1, 64)
		if got := formatFloat(v, true); got != want {
			t.Fatalf("formatFloat(%g, true) = %q, want %q", v, got, want)
		}
	}
}
