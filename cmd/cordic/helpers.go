package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	cordic "github.com/tphakala/go-cordic"
	"github.com/tphakala/go-cordic/internal/analysis"
)

// errInvalidInput reports malformed user input. The kernel is never invoked
// with such input.
var errInvalidInput = errors.New("invalid input")

// parseAngle parses a finite decimal angle in degrees.
func parseAngle(text string) (float64, error) {
	text = strings.TrimSpace(text)
	deg, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: angle %q is not a number", errInvalidInput, text)
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("%w: angle %q is not finite", errInvalidInput, text)
	}
	return deg, nil
}

// parseIterations parses a non-negative iteration count. Empty text selects
// cordic.DefaultIterations. Counts above the table length are accepted and
// clamped by the kernel.
func parseIterations(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return cordic.DefaultIterations, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: iteration count %q is not an integer", errInvalidInput, text)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: iteration count %d is negative", errInvalidInput, n)
	}
	return n, nil
}

// prompt writes msg and reads one line. A missing line reads as empty.
func prompt(scanner *bufio.Scanner, w io.Writer, msg string) (string, error) {
	if _, err := fmt.Fprint(w, msg); err != nil {
		return "", err
	}
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return scanner.Text(), nil
}

// printResult prints the angle and its sine and cosine.
func printResult(w io.Writer, deg, sin, cos float64) error {
	_, err := fmt.Fprintf(w, "Sin(%.*f) = %.*f\nCos(%.*f) = %.*f\n",
		anglePrecision, deg, resultPrecision, sin,
		anglePrecision, deg, resultPrecision, cos)
	return err
}

// printSweep prints one line per iteration count.
func printSweep(w io.Writer, reports []analysis.Report) error {
	if _, err := fmt.Fprintf(w, "%5s  %12s  %12s  %12s  %12s\n",
		"iter", "max error", "rms error", "mean error", "norm error"); err != nil {
		return err
	}
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "%5d  %12.3e  %12.3e  %12.3e  %12.3e\n",
			r.Iterations, r.MaxError, r.RMSError, r.MeanError, r.MaxNormError); err != nil {
			return err
		}
	}
	return nil
}
