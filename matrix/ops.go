// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over Dense: element-wise
// addition, matrix multiplication and the flat dot product. All functions
// perform strict fail-fast validation and return clear errors on shape
// mismatches before touching any output.
//
// Notes:
//   - All kernels use the central validators and wrap with matrixErrorf(op*, err).
//   - Loops walk the flat row-major buffers directly in a fixed order.

package matrix

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a new buffer.
//
// Behavior highlights:
//   - Inputs are never mutated; one allocation for the result.
//   - Add(a, b) equals Add(b, a) element for element.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (message names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// AddInPlace accumulates src into dst (dst += src).
// The shape check runs first, so a failing call writes nothing.
// src may be dst itself, which doubles every element.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c), no allocations.
func AddInPlace[T Float](dst, src *Dense[T]) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	for idx := range dst.data {
		dst.data[idx] += src.data[idx]
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows); nothing is allocated on failure.
//   - Stage 2: allocate a zero-filled A.Rows × B.Cols result.
//   - Stage 3: accumulate with mulAcc.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (message names both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Float](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	mulAcc(res, a, b)

	return res, nil
}

// MulInto accumulates the product into a caller-supplied target: dst += A × B.
// Pass a zero matrix to obtain the plain product without allocating.
// MAIN DESCRIPTION:
//   - Reuse dst's storage as the accumulation target.
//
// Implementation:
//   - Stage 1: validate A,B compatibility, dst shape == (A.Rows, B.Cols), and
//     that dst is neither A nor B.
//   - Stage 2: accumulate with mulAcc.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrAliasedOutput.
//
// Complexity:
//   - Time O(r*n*c), no allocations.
func MulInto[T Float](dst, a, b *Dense[T]) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if dst.r != a.r || dst.c != b.c {
		return shapeErrorf(opMulInto, dst.r, dst.c, a.r, b.c)
	}
	if aliases(dst, a) || aliases(dst, b) {
		return matrixErrorf(opMulInto, ErrAliasedOutput)
	}
	mulAcc(dst, a, b)

	return nil
}

// mulAcc adds A × B into out using i→k→j order over the flat buffers.
// Every shape takes the same triple loop; no value is special-cased, so
// NaN/Inf propagate exactly as the sum of products dictates. For each (i,j)
// the terms are added in ascending k.
func mulAcc[T Float](out, a, b *Dense[T]) {
	var (
		i, j, k                      int
		rowOffsetA, rowOffsetB, rowR int
		av                           T
	)
	aRows, aCols, bCols := a.r, a.c, b.c
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				out.data[rowR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}
}

// aliases reports whether x and y share storage (same matrix or same first element).
func aliases[T Float](x, y *Dense[T]) bool {
	if x == y {
		return true
	}

	return len(x.data) > 0 && len(y.data) > 0 && &x.data[0] == &y.data[0]
}

// Dot returns Σ a[k]*b[k] over the flat buffers.
// Only the element counts must match; a 1×3 and a 3×1 are accepted.
// Products are accumulated left to right from zero, the same order Sum uses.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(len), no allocations.
func Dot[T Float](a, b *Dense[T]) (T, error) {
	var acc T
	if err := ValidateSameLen(a, b); err != nil {
		return acc, matrixErrorf(opDot, err)
	}
	for idx := range a.data {
		acc += T(a.data[idx] * b.data[idx]) // conversion rounds the product; no FMA
	}

	return acc, nil
}

// Dot is the method form of the package-level Dot.
func (m *Dense[T]) Dot(other *Dense[T]) (T, error) { return Dot(m, other) }
