// SPDX-License-Identifier: MIT

// Package completion: boundary types.
package completion

import (
	"context"
	"fmt"
	"math"
)

// Sample is one known coordinate of the matrix being completed.
type Sample struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Request is the flattened form handed to a collaborator.
//   - Data holds Rows*Cols values in row-major order.
//   - Samples lists the known coordinates; nil means "not given" and the
//     collaborator applies its own convention.
type Request struct {
	Rows    int
	Cols    int
	Data    []float64
	Samples []Sample
}

// Validate checks the shape invariant and sample bounds.
func (r Request) Validate() error {
	if r.Rows < 0 || r.Cols < 0 || (r.Cols != 0 && r.Rows > math.MaxInt/r.Cols) ||
		len(r.Data) != r.Rows*r.Cols {
		return fmt.Errorf("(%d,%d) with %d values: %w", r.Rows, r.Cols, len(r.Data), ErrBadRequest)
	}
	for _, s := range r.Samples {
		if s.Row < 0 || s.Row >= r.Rows || s.Col < 0 || s.Col >= r.Cols {
			return fmt.Errorf("sample (%d,%d) outside (%d,%d): %w", s.Row, s.Col, r.Rows, r.Cols, ErrBadRequest)
		}
	}

	return nil
}

// Completer is a matrix-completion collaborator.
// Complete returns Rows*Cols values in row-major order or an error. It must
// not retain or modify req.Data.
type Completer interface {
	Complete(ctx context.Context, req Request) ([]float64, error)
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(ctx context.Context, req Request) ([]float64, error)

// Complete calls f(ctx, req).
func (f CompleterFunc) Complete(ctx context.Context, req Request) ([]float64, error) {
	return f(ctx, req)
}

// MissingPolicy reports whether a value marks an unknown entry.
// It is consulted only when a Request carries no samples.
type MissingPolicy func(v float64) bool

// ZeroIsMissing treats exact zeros as unknown entries.
func ZeroIsMissing(v float64) bool { return v == 0 }

// NaNIsMissing treats NaN as unknown entries; zeros stay observed.
func NaNIsMissing(v float64) bool { return math.IsNaN(v) }

// observedMask resolves which entries are known: the listed samples when
// present, otherwise every entry the policy does not flag.
func observedMask(req Request, missing MissingPolicy) []bool {
	mask := make([]bool, len(req.Data))
	if req.Samples != nil {
		for _, s := range req.Samples {
			mask[s.Row*req.Cols+s.Col] = true
		}
		return mask
	}
	for idx, v := range req.Data {
		mask[idx] = !missing(v)
	}

	return mask
}
