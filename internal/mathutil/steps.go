// Package mathutil provides the scalar math behind the CORDIC rotation kernel:
// arctangent step angles, the gain-compensation factor, angle reduction, and
// the Bessel/Kaiser helpers used when analysing generated tones.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Pow2 returns 2^-i exactly. It is the shift amount of micro-rotation i.
func Pow2(i int) float64 {
	return math.Ldexp(1, -i)
}

// ArctanSteps returns the n elementary rotation angles atan(2^-i), i in [0, n),
// in radians. A non-positive n yields an empty table.
func ArctanSteps(n int) []float64 {
	if n < 1 {
		return []float64{}
	}
	steps := make([]float64, n)
	for i := range n {
		steps[i] = math.Atan(Pow2(i))
	}
	return steps
}

// GainTerms returns the per-iteration length corrections 1/√(1 + 2^-2i), i in [0, n).
func GainTerms(n int) []float64 {
	if n < 1 {
		return []float64{}
	}
	terms := make([]float64, n)
	for i := range n {
		terms[i] = 1 / math.Sqrt(1+Pow2(2*i))
	}
	return terms
}

// ScaleFactor returns the product of the first n gain terms. The product is
// accumulated from 1.0 in ascending i, so the value for n = 50 is
// bit-for-bit the constant K ≈ 0.6072529350088813.
func ScaleFactor(n int) float64 {
	return floats.Prod(GainTerms(n))
}

// DegreesToRadians converts an angle in degrees to radians as deg·π/180.
// The multiplication happens before the division to match the reference rounding.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / degreesPerHalfTurn
}

// ReduceDegrees maps an angle to an equivalent one in [-90, 90] suitable for the
// rotation kernel. When negate is true the caller must negate both sine and
// cosine of the reduced angle (a half-turn fold).
//
// Angles already in [-90, 90] are returned unchanged, bit for bit.
// NaN and ±Inf reduce to NaN.
func ReduceDegrees(deg float64) (reduced float64, negate bool) {
	r := math.Mod(deg, degreesPerTurn)
	if r > degreesPerHalfTurn {
		r -= degreesPerTurn
	} else if r <= -degreesPerHalfTurn {
		r += degreesPerTurn
	}

	switch {
	case r > degreesPerQuarter:
		return r - degreesPerHalfTurn, true
	case r < -degreesPerQuarter:
		return r + degreesPerHalfTurn, true
	default:
		return r, false
	}
}
