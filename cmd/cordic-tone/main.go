// Command cordic-tone writes a sine tone synthesized with the CORDIC kernel to
// a mono PCM WAV file.
//
// Usage:
//
//	cordic-tone out.wav
//	cordic-tone -freq 440 -rate 44100 -duration 2 -bits 24 out.wav
//	cordic-tone -iterations 8 -analyze coarse.wav   # report spurious-free dynamic range
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	cordic "github.com/tphakala/go-cordic"
	"github.com/tphakala/go-cordic/internal/analysis"
	"github.com/tphakala/go-cordic/internal/tone"
)

const (
	// CLI defaults
	defaultFrequency = 1000.0
	defaultRate      = 48000
	defaultDuration  = 1.0 // seconds
	defaultBitDepth  = 16
	minRequiredArgs  = 1

	// Spectrum analysis window length (samples)
	analysisLength = 8192
)

var errUsage = errors.New("insufficient arguments")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

type toneOptions struct {
	config   tone.Config
	duration float64
	bitDepth int
	analyze  bool
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cordic-tone", flag.ContinueOnError)
	fs.SetOutput(stderr)
	freq := fs.Float64("freq", defaultFrequency, "Tone frequency in Hz")
	rate := fs.Int("rate", defaultRate, "Sample rate in Hz")
	duration := fs.Float64("duration", defaultDuration, "Duration in seconds")
	amplitude := fs.Float64("amplitude", tone.DefaultAmplitude, "Peak amplitude in (0, 1]")
	iterations := fs.Int("iterations", cordic.DefaultIterations, "CORDIC iterations per sample (at least 1)")
	bits := fs.Int("bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	analyze := fs.Bool("analyze", false, "Report spurious-free dynamic range of the tone")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < minRequiredArgs {
		fmt.Fprintf(stderr, "Usage: cordic-tone [options] output.wav\n\nOptions:\n")
		fs.PrintDefaults()
		return errUsage
	}
	outputPath := fs.Arg(0)

	opts := toneOptions{
		config: tone.Config{
			Frequency:  *freq,
			SampleRate: *rate,
			Amplitude:  *amplitude,
			Iterations: *iterations,
		},
		duration: *duration,
		bitDepth: *bits,
		analyze:  *analyze,
		verbose:  *verbose,
	}

	if opts.verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Tone: %g Hz at %d Hz, %d-bit, %.3fs", *freq, *rate, *bits, *duration)
		log.Printf("Iterations: %d", *iterations)
	}

	start := time.Now()
	samples, err := generateTone(cordic.Default(), &opts)
	if err != nil {
		return err
	}
	if err := writeToneFile(outputPath, samples, opts.config.SampleRate, opts.bitDepth); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", filepath.Base(outputPath))
	fmt.Fprintf(stdout, "  %d samples, %g Hz tone, %d iterations (%s)\n",
		len(samples), opts.config.Frequency, opts.config.Iterations, time.Since(start).Round(time.Millisecond))

	if opts.analyze {
		spec, err := analyzeTone(samples)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  Amplitude: %.6f, SFDR: %.1f dB\n", spec.PeakAmplitude, spec.SFDR)
	}
	return nil
}

// generateTone validates opts and synthesizes the requested number of samples.
func generateTone(r tone.Rotator, opts *toneOptions) ([]float64, error) {
	if opts.duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", tone.ErrInvalidConfig)
	}
	if opts.config.Iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be at least 1, got %d", tone.ErrInvalidConfig, opts.config.Iterations)
	}
	if tone.FullScale(opts.bitDepth) == 0 {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", tone.ErrInvalidConfig, opts.bitDepth)
	}

	g, err := tone.NewGenerator(r, &opts.config)
	if err != nil {
		return nil, err
	}
	n := int(math.Round(opts.duration * float64(opts.config.SampleRate)))
	return g.Generate(n), nil
}

// writeToneFile creates path and writes samples to it as WAV.
func writeToneFile(path string, samples []float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := tone.WriteWAV(f, samples, sampleRate, bitDepth); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// analyzeTone measures the spectrum of the leading analysisLength samples.
func analyzeTone(samples []float64) (analysis.Spectrum, error) {
	n := min(len(samples), analysisLength)
	return analysis.AnalyzeTone(samples[:n], analysis.DefaultAttenuation)
}
