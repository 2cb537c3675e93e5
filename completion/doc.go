// SPDX-License-Identifier: MIT

// Package completion is the boundary between matrix containers and a
// matrix-completion collaborator.
//
// A collaborator sees only flattened data: a Request carries the shape, the
// row-major values and an optional list of known (row, col) samples, and the
// collaborator answers with rows*cols values. Complete marshals a
// matrix.Dense into that form, makes one blocking call and rebuilds a matrix
// of identical shape from the answer. The core never looks inside.
//
// ✨ Collaborators shipped here:
//   - SVT: native nuclear-norm completion by Singular Value Thresholding
//     (Cai, Candès & Shen), built on gonum's SVD.
//   - Exec: runs an external program per call and speaks JSON over
//     stdin/stdout, for solvers living in another runtime.
//   - CompleterFunc: adapt any function.
//
// When Request.Samples is nil the collaborator decides which entries are
// known. SVT delegates that to a MissingPolicy (ZeroIsMissing by default);
// Exec forwards null and leaves it to the external program.
//
// ⚙️ Usage:
//
//	svt := completion.NewSVT(completion.WithMaxIter(1000))
//	full, err := completion.Complete(ctx, svt, partial, nil)
//	if errors.Is(err, completion.ErrCompletionFailed) {
//	  // the collaborator failed; err also matches its own cause
//	}
package completion
