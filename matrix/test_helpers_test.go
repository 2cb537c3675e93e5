// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep all data finite and exactly representable so == comparisons hold.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcompl/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds an r×c *Dense from data or fails the test.
func MustNew[T matrix.Float](tb testing.TB, r, c int, data []T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Float](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// identity3 and seq3 are the 3×3 fixtures used across kernel tests.
func identity3(tb testing.TB) *matrix.F64 {
	tb.Helper()
	id, err := matrix.Identity[float64](3)
	require.NoError(tb, err)

	return id
}

func seq3(tb testing.TB) *matrix.F64 {
	return MustNew(tb, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

// randomPair returns two r×c matrices filled from fixed seeds.
func randomPair(tb testing.TB, r, c int) (*matrix.F64, *matrix.F64) {
	tb.Helper()
	a, err := matrix.Random[float64](r, c, matrix.WithSeed(1337))
	require.NoError(tb, err)
	b, err := matrix.Random[float64](r, c, matrix.WithSeed(4242))
	require.NoError(tb, err)

	return a, b
}
