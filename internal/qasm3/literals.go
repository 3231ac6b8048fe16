package qasm3

import (
	"math"
	"strconv"
)

// maxPiDenominator bounds the denominators probed when folding a value into
// a rational multiple of pi.
const maxPiDenominator = 12

// formatFloat renders a bound parameter value. With folding enabled, exact
// rational multiples of pi render symbolically (pi, -pi, 2*pi, pi/2, 3*pi/4);
// everything else is the shortest decimal that round-trips.
func formatFloat(v float64, fold bool) string {
	if fold {
		if s, ok := foldPi(v); ok {
			return s
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func foldPi(v float64) (string, bool) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	if n := math.Round(v / math.Pi); n != 0 && v == n*math.Pi && fitsInt64(n) {
		return piMultiple(int64(n), 1), true
	}
	for d := int64(2); d <= maxPiDenominator; d++ {
		n := math.Round(v * float64(d) / math.Pi)
		if n == 0 || !fitsInt64(n) || v != n*math.Pi/float64(d) {
			continue
		}
		return piMultiple(int64(n), d), true
	}
	return "", false
}

// fitsInt64 reports whether converting n to int64 is defined. The float64
// form of math.MaxInt64 rounds up to 2^63, so strict less-than is required.
func fitsInt64(n float64) bool {
	return math.Abs(n) < math.MaxInt64
}

func piMultiple(num, den int64) string {
	var s string
	switch num {
	case 1:
		s = "pi"
	case -1:
		s = "-pi"
	default:
		s = strconv.FormatInt(num, 10) + "*pi"
	}
	if den != 1 {
		s += "/" + strconv.FormatInt(den, 10)
	}
	return s
}
