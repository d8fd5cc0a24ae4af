package analysis

// Spectrum analysis constants
const (
	// DefaultAttenuation is the Kaiser window sidelobe target used by AnalyzeTone
	// callers that have no better figure.
	DefaultAttenuation = 160.0 // dB

	minSpectrumLength = 16 // shortest signal worth transforming

	amplitudeFactor = 2.0  // one-sided spectrum folds ± frequencies together
	decibelFactor   = 20.0 // 20·log10 for amplitude ratios
	guardBinPadding = 2    // bins added around the main lobe estimate

	windowCenterDivisor = 2.0
)

const degreesPerHalfTurn = 180.0
