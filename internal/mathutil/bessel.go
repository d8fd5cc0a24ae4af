package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// It is the building block of the Kaiser window used for spectral analysis
// of generated tones.
//
// The implementation uses Chebyshev polynomial approximations:
//   - For |x| < 3.75: direct polynomial series in (x/3.75)²
//   - For |x| ≥ 3.75: asymptotic expansion with exponential scaling
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions" 9.8.1, 9.8.2.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		t := x / besselSmallArgThreshold
		t *= t
		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	t := besselSmallArgThreshold / ax
	p := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))

	return math.Exp(ax) * p / math.Sqrt(ax)
}

// KaiserBeta computes the Kaiser window β parameter that yields the given
// sidelobe attenuation in decibels.
//
//   - att > 50 dB:        β = 0.1102 * (att - 8.7)
//   - 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - att < 21 dB:        β = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}
