// Package cordic computes sine and cosine with the CORDIC (COordinate Rotation
// DIgital Computer) algorithm in pure Go.
//
// CORDIC evaluates trigonometric functions by rotating a unit vector towards
// the target angle through a fixed sequence of elementary angles atan(2^-i).
// Each micro-rotation needs only additions and multiplications by powers of
// two. The vector length grows by a known factor on every step, so a single
// precomputed scaling factor restores unit length at the end.
//
// # Quick Start
//
// For one-off evaluations use the process-wide default table:
//
//	sin, cos := cordic.SinCos(30)
//
// For explicit control over the table and the iteration count:
//
//	table, err := cordic.New(&cordic.Config{MaxIterations: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sin, cos := table.Rotate(-30, 32)
//
// The table-free functional form takes the constants directly:
//
//	steps, scale := cordic.BuildConstants(cordic.MaxIterations)
//	sin, cos := cordic.Rotate(45, 32, steps, scale)
//
// # Accuracy
//
// Every iteration roughly adds one bit of precision. With the default of
// [DefaultIterations] (32) micro-rotations the result agrees with [math.Sin]
// and [math.Cos] to better than 1e-9. Iteration counts above the table length
// are clamped; counts of zero or less perform no rotation and return (0, 1).
//
// The scaling factor is always the product over the full table length, even
// when fewer iterations are requested. For small iteration counts the result
// is therefore slightly shorter than a unit vector.
//
// # Angle Range
//
// The elementary angles sum to about 99.88°, which bounds the angles the
// iteration can reach. [Table.Rotate] reduces its input modulo 360° and folds
// it by a half turn into [-90°, 90°] first, so any finite angle is accepted.
// [Table.RotateUnreduced] runs the bare iteration and only converges for
// |angle| ≲ 99.88°.
//
// # Thread Safety
//
// A [Table] is immutable once built. Any number of goroutines may call
// [Table.Rotate] on the same table concurrently without locking.
package cordic
