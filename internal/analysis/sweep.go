// Package analysis measures how closely a CORDIC kernel tracks math.Sin and
// math.Cos, and how clean the tones it synthesizes are.
package analysis

import (
	"math"

	"github.com/tphakala/go-cordic/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Kernel is the rotation surface analysed by Sweep and Convergence.
// *cordic.Table satisfies it.
type Kernel interface {
	Rotate(angleDegrees float64, iterations int) (sine, cosine float64)
	Len() int
}

// Report summarises kernel error over a set of angles at one iteration count.
type Report struct {
	Iterations int
	Samples    int

	MaxSinError float64 // max |sin - math.Sin|
	MaxCosError float64 // max |cos - math.Cos|
	MaxError    float64 // max of the two above

	// RMSError and MeanError pool the sine and cosine errors.
	RMSError  float64
	MeanError float64

	// MaxNormError is max |sin² + cos² - 1|.
	MaxNormError float64
}

// AngleGrid returns from, from+step, ... up to and including to (within
// rounding). It returns nil for a non-positive step or an empty interval.
func AngleGrid(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	angles := make([]float64, n)
	for k := range n {
		angles[k] = from + step*float64(k)
	}
	return angles
}

// Sweep evaluates k at every angle with the given iteration count and compares
// the results against the standard library.
func Sweep(k Kernel, iterations int, angles []float64) Report {
	n := len(angles)
	r := Report{Iterations: iterations, Samples: n}
	if n == 0 {
		return r
	}

	sins := make([]float64, n)
	coss := make([]float64, n)
	refSins := make([]float64, n)
	refCoss := make([]float64, n)
	absErr := make([]float64, 2*n)
	normErr := make([]float64, n)

	for i, deg := range angles {
		s, c := k.Rotate(deg, iterations)
		rs, rc := math.Sincos(deg * math.Pi / degreesPerHalfTurn)

		sins[i], coss[i] = s, c
		refSins[i], refCoss[i] = rs, rc
		absErr[i] = math.Abs(s - rs)
		absErr[n+i] = math.Abs(c - rc)
		normErr[i] = math.Abs(s*s + c*c - 1)
	}

	r.MaxSinError = floats.Distance(sins, refSins, math.Inf(1))
	r.MaxCosError = floats.Distance(coss, refCoss, math.Inf(1))
	r.MaxError = math.Max(r.MaxSinError, r.MaxCosError)

	total := float64(len(absErr))
	r.RMSError = math.Sqrt(simdops.SumSquares(absErr) / total)
	r.MeanError = simdops.Float64Ops().Sum(absErr) / total
	r.MaxNormError = floats.Max(normErr)

	return r
}

// Convergence runs Sweep for every iteration count from 1 to k.Len().
func Convergence(k Kernel, angles []float64) []Report {
	reports := make([]Report, 0, k.Len())
	for n := 1; n <= k.Len(); n++ {
		reports = append(reports, Sweep(k, n, angles))
	}
	return reports
}
