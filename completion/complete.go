// SPDX-License-Identifier: MIT

package completion

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matcompl/matrix"
)

// Complete hands m to c and rebuilds a matrix of the same shape from the answer.
// MAIN DESCRIPTION:
//   - Marshal m into a Request (flattened float64 copy, samples passed as given).
//   - Make exactly one blocking call to c.
//   - Rebuild through matrix.NewOwned, which enforces len == rows*cols.
//
// Implementation:
//   - Stage 1: validate c, m and every sample coordinate.
//   - Stage 2: call c.Complete; no partial processing of a failed call.
//   - Stage 3: convert the answer back to T and adopt it.
//
// Behavior highlights:
//   - m is never modified; the result is a fresh matrix.
//   - samples == nil is forwarded as nil ("not given"); an empty non-nil slice
//     means "nothing is known".
//
// Errors:
//   - ErrNilCompleter, matrix.ErrNilMatrix, matrix.ErrOutOfBounds (bad sample).
//   - ErrCompletionFailed wrapping the collaborator's error unchanged, or
//     wrapping matrix.ErrShapeMismatch when the answer has the wrong length.
//
// Complexity:
//   - O(r*c) marshalling plus the collaborator's cost.
func Complete[T matrix.Float](ctx context.Context, c Completer, m *matrix.Dense[T], samples []Sample) (*matrix.Dense[T], error) {
	if c == nil {
		return nil, completionErrorf(opComplete, ErrNilCompleter)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, completionErrorf(opComplete, err)
	}
	rows, cols := m.Shape()
	for _, s := range samples {
		if s.Row < 0 || s.Row >= rows || s.Col < 0 || s.Col >= cols {
			return nil, fmt.Errorf("%s: sample (%d,%d): %w", opComplete, s.Row, s.Col, matrix.ErrOutOfBounds)
		}
	}

	req := Request{Rows: rows, Cols: cols, Data: toFloat64(m.Data()), Samples: samples}
	out, err := c.Complete(ctx, req)
	if err != nil {
		return nil, failedErrorf(err)
	}

	res, err := matrix.NewOwned(rows, cols, fromFloat64[T](out))
	if err != nil {
		return nil, failedErrorf(err)
	}

	return res, nil
}

// toFloat64 widens a flattened buffer for the wire form.
func toFloat64[T matrix.Float](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}

	return out
}

// fromFloat64 narrows a collaborator answer back to T.
func fromFloat64[T matrix.Float](xs []float64) []T {
	out := make([]T, len(xs))
	for i, v := range xs {
		out[i] = T(v)
	}

	return out
}
