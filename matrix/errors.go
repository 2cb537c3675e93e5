// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. Public functions never panic on user input;
// Must is the single opt-in exception.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("<Op>: ...: %w", ErrX) so callers keep errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> bad shape -> shape mismatch -> aliasing.

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible
	// (Add with different shapes, Mul with a.Cols != b.Rows, Dot with different
	// lengths) or when supplied data does not hold exactly rows*cols values.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfBounds indicates that a row or column index is outside the
	// declared extent. At, Set and Row return it instead of panicking.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or an empty matrix handed to gonum).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliasedOutput indicates that an "into" target is also one of the inputs.
	ErrAliasedOutput = errors.New("matrix: output aliases an input")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opNewOwned  = "NewOwned"
	opZeros     = "Zeros"
	opRandom    = "Random"
	opIdentity  = "Identity"
	opSetData   = "SetData"
	opAdd       = "Add"
	opAddInto   = "AddInPlace"
	opMul       = "Mul"
	opMulInto   = "MulInto"
	opDot       = "Dot"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports a binary-operation shape conflict naming both shapes.
func shapeErrorf(tag string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: (%d,%d) vs (%d,%d): %w", tag, ar, ac, br, bc, ErrShapeMismatch)
}

// denseErrorf wraps an error with Dense method context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
