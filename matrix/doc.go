// Package matrix offers a dense, generic, row-major matrix container.
//
// The matrix package provides:
//
//   - Dense[T], a fixed-shape two-dimensional buffer over any floating-point
//     element type (float32, float64 and named types built on them).
//   - Bounds-checked accessors (At/Set) and no-copy row views (Row) that agree
//     with each other bit for bit.
//   - Element-wise addition (Add, AddInPlace), matrix multiplication
//     (Mul, MulInto) and the flat dot product (Dot).
//   - Uniform random construction (Random) and a copy bridge to gonum
//     (ToGonum, FromGonum).
//
// Storage is row-major: element (i, j) lives at offset i*cols + j and the
// backing slice always holds exactly rows*cols values. Every operation checks
// its preconditions before it writes, so a failed call leaves all operands
// untouched. Failures are reported as errors matching ErrShapeMismatch,
// ErrOutOfBounds and friends via errors.Is; wrap a constructor in Must when a
// violation should abort the program instead.
//
// Quick example:
//
//	a := matrix.Must(matrix.New(2, 2, []float64{2, 2, 1, 0}))
//	b := matrix.Must(matrix.New(2, 2, []float64{1, 1, 2, 3}))
//	p, err := matrix.Mul(a, b) // [[6, 8], [1, 1]]
//
// Complexity:
//   - At/Set/Row: O(1); Add/Dot: O(r*c); Mul: O(r*n*c).
package matrix
