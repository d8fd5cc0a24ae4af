package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-cordic/internal/mathutil"
	"github.com/tphakala/go-cordic/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// ErrSignalTooShort indicates a signal too short for spectral analysis.
var ErrSignalTooShort = errors.New("signal too short for spectrum analysis")

// Spectrum describes the dominant tone of a signal.
type Spectrum struct {
	// PeakBin is the FFT bin of the strongest non-DC component.
	PeakBin int

	// PeakAmplitude is the tone amplitude corrected for window gain.
	PeakAmplitude float64

	// SFDR is the spurious-free dynamic range in dB: the ratio of the peak to
	// the largest component outside its main lobe. +Inf when nothing is found.
	SFDR float64
}

// KaiserWindow generates a Kaiser window of the specified length and β.
// The window is symmetric with a peak of 1.0 at its center:
//
//	w[n] = I₀(β·√(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	alpha := float64(length-1) / windowCenterDivisor
	i0Beta := mathutil.BesselI0(beta)
	for n := range length {
		x := (float64(n) - alpha) / alpha
		window[n] = mathutil.BesselI0(beta*math.Sqrt(1.0-x*x)) / i0Beta
	}
	return window
}

// AnalyzeTone windows samples with a Kaiser window designed for attenuation
// dB sidelobes, transforms them, and reports the dominant tone and SFDR.
func AnalyzeTone(samples []float64, attenuation float64) (Spectrum, error) {
	n := len(samples)
	if n < minSpectrumLength {
		return Spectrum{}, fmt.Errorf("%w: %d samples (minimum %d)", ErrSignalTooShort, n, minSpectrumLength)
	}

	beta := mathutil.KaiserBeta(attenuation)
	window := KaiserWindow(n, beta)
	windowed := make([]float64, n)
	floats.MulTo(windowed, samples, window)

	coeffs := fourier.NewFFT(n).Coefficients(nil, windowed)
	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	// Normalise so a bin-centred tone of amplitude A reads A.
	ops := simdops.Float64Ops()
	ops.Scale(mags, mags, amplitudeFactor/ops.Sum(window))

	// Main lobe half-width of a Kaiser window is √(β² + π²)/π bins.
	guard := int(math.Ceil(math.Hypot(beta, math.Pi)/math.Pi)) + guardBinPadding

	peakBin := floats.MaxIdx(mags[1:]) + 1
	peak := mags[peakBin]

	var spur float64
	for i := guard; i < len(mags); i++ {
		if i >= peakBin-guard && i <= peakBin+guard {
			continue
		}
		spur = math.Max(spur, mags[i])
	}

	spec := Spectrum{
		PeakBin:       peakBin,
		PeakAmplitude: peak,
		SFDR:          math.Inf(1),
	}
	if spur > 0 {
		spec.SFDR = decibelFactor * math.Log10(peak/spur)
	}
	return spec, nil
}
