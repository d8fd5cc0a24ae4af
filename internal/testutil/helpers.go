// Package testutil provides reusable assertion helpers for the CORDIC tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	KernelTolerance  = 1e-6  // sine/cosine accuracy at the default iteration count
	NoiseFloor       = 1e-12 // slack for rounding noise once the kernel has converged
)

// TestingT is the subset of *testing.T the helpers need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %g is outside range [%g, %g]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertNonIncreasing verifies that s[i] <= s[i-1] + slack for every i.
func AssertNonIncreasing(t TestingT, s []float64, slack float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1]+slack {
			return assert.Fail(t, fmt.Sprintf("s[%d]=%g > s[%d]=%g (slack %g)", i, s[i], i-1, s[i-1], slack), msgAndArgs...)
		}
	}
	return true
}

// AssertUnitNorm verifies that sin² + cos² is within tolerance of one.
func AssertUnitNorm(t TestingT, sin, cos, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, 1.0, sin*sin+cos*cos, tolerance, msgAndArgs...)
}
