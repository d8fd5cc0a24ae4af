package cordic

import (
	"math"

	"github.com/tphakala/go-cordic/internal/mathutil"
)

// Rotate computes the sine and cosine of angleDegrees with the CORDIC rotation
// kernel, using the step table and scaling factor from BuildConstants.
//
// The angle is first reduced into [-90°, 90°] (modulo 360°, then a half-turn
// fold that negates both results), which keeps it inside the range the
// iteration converges on. For inputs already in [-90°, 90°] the result is
// identical to RotateUnreduced.
//
// iterations is clamped to len(steps). A value of zero or less performs no
// rotation and yields (0, 1). NaN and infinite angles yield (NaN, NaN).
func Rotate(angleDegrees float64, iterations int, steps []float64, scale float64) (sine, cosine float64) {
	if iterations <= 0 {
		return 0, 1
	}

	reduced, negate := mathutil.ReduceDegrees(angleDegrees)
	if math.IsNaN(reduced) {
		return math.NaN(), math.NaN()
	}

	sine, cosine = rotate(reduced, iterations, steps, scale)
	if negate {
		return -sine, -cosine
	}
	return sine, cosine
}

// RotateUnreduced is Rotate without range reduction or non-finite handling.
// It only converges for |angleDegrees| up to the sum of the step angles
// (≈ 99.88° for a full table); beyond that the vector stops at the limit.
func RotateUnreduced(angleDegrees float64, iterations int, steps []float64, scale float64) (sine, cosine float64) {
	if iterations <= 0 {
		return 0, 1
	}
	return rotate(angleDegrees, iterations, steps, scale)
}

// rotate is the bare iteration. The direction of micro-rotation i depends on
// the sign of the residual angle before step i is subtracted or added.
func rotate(angleDegrees float64, iterations int, steps []float64, scale float64) (sine, cosine float64) {
	beta := mathutil.DegreesToRadians(angleDegrees)
	n := min(iterations, len(steps))

	vx, vy := 1.0, 0.0
	pow2 := 1.0 // 2^-i, halved each step
	for i := range n {
		if beta < 0 {
			vx, vy = vx+vy*pow2, vy-vx*pow2
			beta += steps[i]
		} else {
			vx, vy = vx-vy*pow2, vy+vx*pow2
			beta -= steps[i]
		}
		pow2 *= 0.5
	}

	return vy * scale, vx * scale
}
