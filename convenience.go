package cordic

import "sync"

// defaultTable is the process-wide reference table, built on first use.
var defaultTable = sync.OnceValue(func() *Table {
	steps, scale := BuildConstants(MaxIterations)
	return &Table{steps: steps, scale: scale}
})

// Default returns the shared 50-entry table. The constants are computed once
// per process.
func Default() *Table {
	return defaultTable()
}

// SinCos returns the sine and cosine of angleDegrees using the default table
// and DefaultIterations.
func SinCos(angleDegrees float64) (sine, cosine float64) {
	return Default().Rotate(angleDegrees, DefaultIterations)
}

// Sin returns the sine of angleDegrees. See SinCos.
func Sin(angleDegrees float64) float64 {
	s, _ := SinCos(angleDegrees)
	return s
}

// Cos returns the cosine of angleDegrees. See SinCos.
func Cos(angleDegrees float64) float64 {
	_, c := SinCos(angleDegrees)
	return c
}
