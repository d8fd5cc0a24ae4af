// Package tone synthesizes sine tones with the CORDIC kernel and writes them
// as PCM WAV files.
package tone

import (
	"errors"
	"fmt"
	"math"

	cordic "github.com/tphakala/go-cordic"
)

// Generator defaults and limits
const (
	DefaultAmplitude = 0.5

	nyquistDivisor = 2.0
	degreesPerTurn = 360.0
)

// ErrInvalidConfig indicates invalid tone parameters.
var ErrInvalidConfig = errors.New("invalid tone configuration")

// Rotator computes sine and cosine of an angle in degrees.
// *cordic.Table satisfies it.
type Rotator interface {
	Rotate(angleDegrees float64, iterations int) (sine, cosine float64)
}

// Config holds oscillator parameters.
type Config struct {
	// Frequency of the tone in Hz. Must be below the Nyquist frequency.
	Frequency float64

	// SampleRate in Hz.
	SampleRate int

	// Amplitude in (0, 1]. Set to 0 to use DefaultAmplitude.
	Amplitude float64

	// Iterations per sample passed to the kernel. Set to 0 to use cordic.DefaultIterations.
	Iterations int

	// Phase is the starting phase in degrees.
	Phase float64
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}
	if c.Frequency <= 0 || c.Frequency >= float64(c.SampleRate)/nyquistDivisor {
		return fmt.Errorf("%w: frequency must be in (0, %g) Hz", ErrInvalidConfig, float64(c.SampleRate)/nyquistDivisor)
	}
	if c.Amplitude < 0 || c.Amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in (0, 1]", ErrInvalidConfig)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative", ErrInvalidConfig)
	}
	if math.IsNaN(c.Phase) || math.IsInf(c.Phase, 0) {
		return fmt.Errorf("%w: phase must be finite", ErrInvalidConfig)
	}
	return nil
}

// Generator is a phase-accumulator oscillator. The phase is kept in
// [0, 360) degrees so the kernel never sees large angles.
type Generator struct {
	rotator    Rotator
	iterations int
	amplitude  float64
	start      float64
	phase      float64
	step       float64
}

// NewGenerator creates a Generator that evaluates r once per sample.
func NewGenerator(r Rotator, config *Config) (*Generator, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: rotator is nil", ErrInvalidConfig)
	}
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		rotator:    r,
		iterations: config.Iterations,
		amplitude:  config.Amplitude,
		start:      wrapDegrees(config.Phase),
		step:       degreesPerTurn * config.Frequency / float64(config.SampleRate),
	}
	if g.iterations == 0 {
		g.iterations = cordic.DefaultIterations
	}
	if g.amplitude == 0 {
		g.amplitude = DefaultAmplitude
	}
	g.phase = g.start
	return g, nil
}

// Next returns the next sample and advances the phase.
func (g *Generator) Next() float64 {
	s, _ := g.rotator.Rotate(g.phase, g.iterations)
	g.phase += g.step
	if g.phase >= degreesPerTurn {
		g.phase -= degreesPerTurn
	}
	return g.amplitude * s
}

// Read fills dst with consecutive samples and returns len(dst).
func (g *Generator) Read(dst []float64) int {
	for i := range dst {
		dst[i] = g.Next()
	}
	return len(dst)
}

// Generate returns n samples.
func (g *Generator) Generate(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	g.Read(out)
	return out
}

// Reset rewinds the oscillator to its starting phase.
func (g *Generator) Reset() {
	g.phase = g.start
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, degreesPerTurn)
	if deg < 0 {
		deg += degreesPerTurn
	}
	return deg
}
