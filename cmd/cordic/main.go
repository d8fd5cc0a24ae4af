// Command cordic computes sine and cosine of an angle with the CORDIC kernel.
//
// Usage:
//
//	cordic                          # prompt for angle and iteration count
//	cordic -angle 30                # 32 iterations
//	cordic -angle -30 -iterations 16
//	cordic -sweep                   # error versus iteration count
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	cordic "github.com/tphakala/go-cordic"
	"github.com/tphakala/go-cordic/internal/analysis"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("cordic", flag.ContinueOnError)
	angleText := fs.String("angle", "", "Angle in degrees (prompted for when omitted)")
	iterText := fs.String("iterations", "", fmt.Sprintf("Number of iterations (default %d, max %d)",
		cordic.DefaultIterations, cordic.MaxIterations))
	sweep := fs.Bool("sweep", false, "Print the error against math.Sin/math.Cos for every iteration count")
	step := fs.Float64("step", defaultSweepStep, "Angle step in degrees for -sweep")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table := cordic.Default()
	if *verbose {
		log.Printf("Step table: %d entries, scale factor %.16f", table.Len(), table.Scale())
		log.Printf("Convergence limit: %.6f degrees", table.ConvergenceLimit())
	}

	if *sweep {
		if *step <= 0 {
			return fmt.Errorf("%w: sweep step must be positive", errInvalidInput)
		}
		angles := analysis.AngleGrid(sweepFrom, sweepTo, *step)
		if *verbose {
			log.Printf("Sweeping %d angles", len(angles))
		}
		return printSweep(stdout, analysis.Convergence(table, angles))
	}

	scanner := bufio.NewScanner(stdin)

	if *angleText == "" {
		text, err := prompt(scanner, stdout, "Enter the angle in degrees: ")
		if err != nil {
			return err
		}
		*angleText = text
	}
	deg, err := parseAngle(*angleText)
	if err != nil {
		return err
	}

	if !flagSet(fs, "iterations") && !flagSet(fs, "angle") {
		text, err := prompt(scanner, stdout, fmt.Sprintf("Enter the number of iterations (default %d, max %d): ",
			cordic.DefaultIterations, cordic.MaxIterations))
		if err != nil {
			return err
		}
		*iterText = text
	}
	iterations, err := parseIterations(*iterText)
	if err != nil {
		return err
	}

	if *verbose && iterations > table.Len() {
		log.Printf("Iterations clamped from %d to %d", iterations, table.Len())
	}

	sin, cos := table.Rotate(deg, iterations)
	return printResult(stdout, deg, sin, cos)
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
