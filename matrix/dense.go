// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep the len(data) == rows*cols invariant under every constructor and mutator.
//
// Complexity quicksheet:
//   - New/Zeros/Random: O(r*c); At/Set/Row: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over a Float element type.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense exclusively owns data. The zero value is a valid 0×0 matrix.
type Dense[T Float] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates a rows×cols matrix holding a copy of data.
// MAIN DESCRIPTION:
//   - Public constructor from an explicit flattened sequence (borrowed).
//
// Implementation:
//   - Stage 1: validate rows,cols >= 0 and len(data) == rows*cols.
//   - Stage 2: copy data into a fresh buffer.
//
// Errors:
//   - ErrBadShape (negative dimensions), ErrShapeMismatch (length).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Float](rows, cols int, data []T) (*Dense[T], error) {
	if err := validateDataLen(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewOwned creates a rows×cols matrix that adopts data as its backing buffer.
// The caller hands over ownership and must not use data afterwards.
// Errors: ErrBadShape, ErrShapeMismatch.
// Complexity: O(1).
func NewOwned[T Float](rows, cols int, data []T) (*Dense[T], error) {
	if err := validateDataLen(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opNewOwned, err)
	}
	if data == nil {
		data = []T{} // keep Data()/Row results non-nil for empty shapes
	}

	return &Dense[T]{r: rows, c: cols, data: data[:len(data):len(data)]}, nil
}

// Zeros creates a rows×cols zero matrix. (0,0) and other empty shapes are legal.
// Errors: ErrBadShape on negative dimensions.
// Complexity: O(r*c).
func Zeros[T Float](rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// ZerosLike allocates a zero matrix with the same shape as m.
func ZerosLike[T Float](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return Zeros[T](m.r, m.c)
}

// Identity creates the n×n identity matrix.
func Identity[T Float](n int) (*Dense[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Random creates a rows×cols matrix of independent samples, uniform on [0, 1).
// MAIN DESCRIPTION:
//   - Each element is drawn from distuv.Uniform{Min: 0, Max: 1}.
//
// Implementation:
//   - Stage 1: validate dims and gather options.
//   - Stage 2: draw r*c samples in row-major order; a draw that rounds up to 1
//     in T (possible for float32) is redrawn so the range stays half-open.
//
// Determinism:
//   - Reproducible only with WithSeed/WithSource; the default source is not.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	m, err := Zeros[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	o := gatherOptions(opts...)
	dist := distuv.Uniform{Min: DefaultRandomMin, Max: DefaultRandomMax, Src: o.src}

	var v T
	for idx := range m.data {
		for {
			v = T(dist.Rand())
			if v < DefaultRandomMax {
				break
			}
		}
		m.data[idx] = v
	}

	return m, nil
}

// Must returns m or panics when err is non-nil.
// It wraps any constructor for the process-fatal form:
//
//	id := matrix.Must(matrix.Identity[float64](3))
func Must[T Float](m *Dense[T], err error) *Dense[T] {
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols, the number of stored elements.
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare sentinel; public methods wrap with method and coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds; nothing is written on error.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a view over the cols contiguous elements of row.
// MAIN DESCRIPTION:
//   - No-copy window: writes through the view are visible via At and vice versa.
//
// Behavior highlights:
//   - The view's capacity equals its length, so append never reaches the next row.
//   - Row(i)[j] and At(i, j) read the same memory and always agree.
//
// Errors:
//   - ErrOutOfBounds when row is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(row int) ([]T, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, row, ErrOutOfBounds)
	}
	lo, hi := row*m.c, (row+1)*m.c

	return m.data[lo:hi:hi], nil
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// SetData overwrites every element from data, which must hold exactly Len() values.
// The shape never changes; a wrong length fails with ErrShapeMismatch and
// leaves m untouched.
func (m *Dense[T]) SetData(data []T) error {
	if err := validateDataLen(m.r, m.c, len(data)); err != nil {
		return matrixErrorf(opSetData, err)
	}
	copy(m.data, data)

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// Equal reports whether m and other have the same shape and every element
// compares equal at the same offset. There is no tolerance, so NaN never
// equals NaN. Two nil matrices are equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Equal is the function form of (*Dense).Equal.
func Equal[T Float](a, b *Dense[T]) bool { return a.Equal(b) }

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one line per row, values formatted with %g:
//
//	[1, 2]
//	[3, 4]
//
// Intended for diagnostics, not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
