// SPDX-License-Identifier: MIT

// Package matrix: copy bridge to gonum's mat package.
// Both directions copy; gonum never sees a Dense buffer. Empty matrices are
// rejected because mat.NewDense panics on zero-length shapes.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a float64 *mat.Dense.
// Errors: ErrNilMatrix, ErrBadShape (zero rows or cols).
// Complexity: O(r*c).
func ToGonum[T Float](m *Dense[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: (%d,%d): %w", opToGonum, m.r, m.c, ErrBadShape)
	}
	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense[T], converting each
// element with T(v). Reads go through At, so transposed or sliced views work.
// Errors: ErrNilMatrix when src is nil.
// Complexity: O(r*c).
func FromGonum[T Float](src mat.Matrix) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := Zeros[T](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = T(src.At(i, j))
		}
	}

	return out, nil
}
