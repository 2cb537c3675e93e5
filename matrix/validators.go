// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name; kernels add the
//    operation tag on top.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T Float](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// The mismatch error names both shapes.
// Complexity: O(1).
func ValidateSameShape[T Float](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return shapeErrorf("ValidateSameShape", a.r, a.c, b.r, b.c)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible[T Float](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return shapeErrorf("ValidateMulCompatible", a.r, a.c, b.r, b.c)
	}

	return nil
}

// ValidateSameLen ensures a and b hold the same number of elements.
// Shapes may differ: a 1×3 and a 3×1 are compatible.
// Complexity: O(1).
func ValidateSameLen[T Float](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return shapeErrorf("ValidateSameLen", a.r, a.c, b.r, b.c)
	}

	return nil
}

// validateDims rejects negative dimensions.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// rows*cols must be representable as an element count.
	if cols != 0 && rows > math.MaxInt/cols {
		return fmt.Errorf("(%d,%d) overflows int: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// validateDataLen checks the rows*cols invariant for supplied data.
func validateDataLen(rows, cols, n int) error {
	if err := validateDims(rows, cols); err != nil {
		return err
	}
	if n != rows*cols {
		return fmt.Errorf("(%d,%d) needs %d values, got %d: %w", rows, cols, rows*cols, n, ErrShapeMismatch)
	}

	return nil
}
