// SPDX-License-Identifier: MIT

// Package matrix: element type contract and convenience aliases.
package matrix

import "golang.org/x/exp/constraints"

// Float is the capability gate for matrix elements.
// Any type whose underlying type is float32 or float64 qualifies: it has the
// zero/one identities, +, *, += and can be reduced with Sum.
// Violations are compile-time rejections; there is no runtime check.
type Float interface {
	constraints.Float
}

// F32 is a single-precision dense matrix.
type F32 = Dense[float32]

// F64 is a double-precision dense matrix.
type F64 = Dense[float64]

// Sum reduces xs by left-to-right accumulation starting from zero.
// An empty slice sums to zero.
// Complexity: O(len(xs)).
func Sum[T Float](xs []T) T {
	var acc T // additive identity
	for _, x := range xs {
		acc += x
	}

	return acc
}
