package cordic

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-cordic/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Config holds step table configuration.
type Config struct {
	// MaxIterations is the number of elementary angles in the table and the
	// upper bound on iterations per rotation. Set to 0 to use MaxIterations (50).
	MaxIterations int
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid cordic configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must not be negative", ErrInvalidConfig)
	}
	if c.MaxIterations > maxTableLength {
		return fmt.Errorf("%w: max iterations out of range (max %d)", ErrInvalidConfig, maxTableLength)
	}
	return nil
}

// Table holds the precomputed CORDIC constants: the elementary rotation
// angles atan(2^-i) and the scaling factor Π 1/√(1+2^-2i) over the whole table.
// A Table is read-only after construction.
type Table struct {
	steps []float64
	scale float64
}

// BuildConstants computes the step table and scaling factor for maxIterations
// elementary rotations. It is deterministic and has no side effects; call it
// once and reuse the result.
func BuildConstants(maxIterations int) (steps []float64, scale float64) {
	return mathutil.ArctanSteps(maxIterations), mathutil.ScaleFactor(maxIterations)
}

// New creates a Table from config.
func New(config *Config) (*Table, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := config.MaxIterations
	if n == 0 {
		n = MaxIterations
	}
	return NewTable(n)
}

// NewTable creates a Table with maxIterations elementary angles.
func NewTable(maxIterations int) (*Table, error) {
	if maxIterations < 1 || maxIterations > maxTableLength {
		return nil, fmt.Errorf("%w: max iterations must be 1-%d, got %d",
			ErrInvalidConfig, maxTableLength, maxIterations)
	}

	steps, scale := BuildConstants(maxIterations)
	return &Table{steps: steps, scale: scale}, nil
}

// Len returns the number of elementary angles, i.e. the iteration cap.
func (t *Table) Len() int {
	return len(t.steps)
}

// Steps returns a copy of the elementary angles in radians.
func (t *Table) Steps() []float64 {
	out := make([]float64, len(t.steps))
	copy(out, t.steps)
	return out
}

// Scale returns the scaling factor applied after the last micro-rotation.
func (t *Table) Scale() float64 {
	return t.scale
}

// ConvergenceLimit returns the largest angle magnitude, in degrees, that the
// unreduced iteration can reach: the sum of all elementary angles.
func (t *Table) ConvergenceLimit() float64 {
	return floats.Sum(t.steps) * radiansToDegrees / math.Pi
}

// Rotate returns the sine and cosine of angleDegrees using at most iterations
// micro-rotations. See the package-level Rotate.
func (t *Table) Rotate(angleDegrees float64, iterations int) (sine, cosine float64) {
	return Rotate(angleDegrees, iterations, t.steps, t.scale)
}

// RotateUnreduced runs the CORDIC iteration on angleDegrees without range
// reduction. See the package-level RotateUnreduced.
func (t *Table) RotateUnreduced(angleDegrees float64, iterations int) (sine, cosine float64) {
	return RotateUnreduced(angleDegrees, iterations, t.steps, t.scale)
}
