// SPDX-License-Identifier: MIT

// Package completion - Singular Value Thresholding.
//
// Purpose:
//   - Complete a partially observed matrix by nuclear-norm minimisation:
//     minimize ||X||_* subject to X[i,j] == M[i,j] on the observed set Ω.
//
// Implementation (Cai, Candès & Shen, 2010):
//   - X_k   = D_tau(Y_{k-1})            (soft-threshold the singular values)
//   - Y_k   = Y_{k-1} + delta * P_Ω(M - X_k)
//   - stop when ||P_Ω(X_k - M)||_F <= tol * ||P_Ω(M)||_F.
//   - Y_0 = k0 * delta * P_Ω(M) with k0 = ceil(tau / (delta*||P_Ω(M)||_F)),
//     which skips the iterations where D_tau(Y) is still zero.
//
// Complexity:
//   - Each iteration is one thin SVD: O(m*n*min(m,n)).

package completion

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SVT is a native Completer. It is stateless between calls and safe for
// concurrent use.
type SVT struct {
	opts svtOptions
}

var _ Completer = (*SVT)(nil)

// NewSVT builds an SVT completer. Defaults: tau = 5*sqrt(m*n),
// delta = min(1.2/p, 1.9), tol = 1e-4, 500 iterations, ZeroIsMissing,
// observed entries pinned.
func NewSVT(opts ...SVTOption) *SVT {
	o := defaultSVTOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &SVT{opts: o}
}

// Complete runs SVT on req. See the package documentation for the boundary.
// MAIN DESCRIPTION:
//   - Resolve Ω (samples or missing policy), iterate, return the last iterate.
//
// Behavior highlights:
//   - No observed entries (or all observed values zero) yields the zero matrix,
//     the minimiser of the unconstrained problem.
//   - ctx is checked before every iteration.
//
// Errors:
//   - ErrBadRequest (also for a NaN or Inf observed value), ErrSVDFailed, ctx.Err().
func (s *SVT) Complete(ctx context.Context, req Request) ([]float64, error) {
	if err := req.Validate(); err != nil {
		return nil, completionErrorf(opSVT, err)
	}
	m, n := req.Rows, req.Cols
	size := m * n
	if size == 0 {
		return []float64{}, nil
	}

	mask := observedMask(req, s.opts.missing)
	known := 0
	obs := make([]float64, size) // P_Ω(M)
	for idx, ok := range mask {
		if !ok {
			continue
		}
		v := req.Data[idx]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: observed value %v at (%d,%d): %w", opSVT, v, idx/n, idx%n, ErrBadRequest)
		}
		obs[idx] = v
		known++
	}
	normObs := floats.Norm(obs, 2)
	if known == 0 || normObs == 0 {
		return make([]float64, size), nil
	}

	tau := s.opts.tau
	if tau == 0 {
		tau = DefaultTauScale * math.Sqrt(float64(size))
	}
	step := s.opts.step
	if step == 0 {
		step = math.Min(DefaultStepScale*float64(size)/float64(known), MaxAutoStep)
	}

	// Kick-start Y.
	k0 := math.Ceil(tau / (step * normObs))
	yData := make([]float64, size)
	floats.ScaleTo(yData, k0*step, obs)
	y := mat.NewDense(m, n, yData)
	x := mat.NewDense(m, n, nil)

	resid := make([]float64, size)
	var (
		svd mat.SVD
		err error
	)
	for iter := 0; iter < s.opts.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, completionErrorf(opSVT, err)
		}
		if ok := svd.Factorize(y, mat.SVDThin); !ok {
			return nil, completionErrorf(opSVT, ErrSVDFailed)
		}
		shrink(&svd, tau, x)

		// resid = P_Ω(M - X)
		xd := x.RawMatrix().Data
		for idx, ok := range mask {
			if ok {
				resid[idx] = obs[idx] - xd[idx]
			}
		}
		if floats.Norm(resid, 2) <= s.opts.tol*normObs {
			break
		}
		floats.AddScaled(yData, step, resid)
	}

	out := make([]float64, size)
	copy(out, x.RawMatrix().Data)
	if s.opts.keepObserved {
		for idx, ok := range mask {
			if ok {
				out[idx] = req.Data[idx]
			}
		}
	}

	return out, nil
}

// shrink writes D_tau(Y) = U * diag(max(sigma - tau, 0)) * V^T into x.
// Singular values from gonum come in descending order, so the kept rank is
// the length of the leading run above tau.
func shrink(svd *mat.SVD, tau float64, x *mat.Dense) {
	values := svd.Values(nil)
	rank := 0
	for rank < len(values) && values[rank] > tau {
		rank++
	}
	if rank == 0 {
		x.Zero()
		return
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	m, _ := u.Dims()
	n, _ := v.Dims()

	us := mat.NewDense(m, rank, nil)
	var i, k int
	for i = 0; i < m; i++ {
		for k = 0; k < rank; k++ {
			us.Set(i, k, u.At(i, k)*(values[k]-tau))
		}
	}
	x.Mul(us, v.Slice(0, n, 0, rank).T())
}
