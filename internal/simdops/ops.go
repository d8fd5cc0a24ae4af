// Package simdops exposes the float64 vector reductions used by the accuracy
// and spectrum analysis, backed by github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops64 groups the SIMD-accelerated float64 kernels behind function pointers
// so callers can be handed a single value.
type Ops64 struct {
	// DotProductUnsafe computes Σ a[i]*b[i] without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float64) float64

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops64{
	DotProductUnsafe: f64.DotProductUnsafe,
	Sum:              f64.Sum,
	Scale:            f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops64 {
	return &ops64
}

// SumSquares returns Σ a[i]².
func SumSquares(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return ops64.DotProductUnsafe(a, a)
}

