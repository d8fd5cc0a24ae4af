package cordic

// Iteration limits
const (
	// MaxIterations is the reference step table length.
	MaxIterations = 50

	// DefaultIterations is the iteration count used when none is requested.
	DefaultIterations = 32

	// maxTableLength bounds Config.MaxIterations. Steps beyond ~53 are below
	// double precision and only cost time.
	maxTableLength = 1024
)

const (
	radiansToDegrees = 180.0 // numerator for rad→deg conversion (divided by π)
)
