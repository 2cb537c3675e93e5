// SPDX-License-Identifier: MIT

// Package completion: functional configuration for the shipped collaborators.
// This file defines:
//   - SVTOption / ExecOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package completion

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTauScale sets the threshold tau = DefaultTauScale * sqrt(rows*cols)
	// unless WithTau overrides it.
	DefaultTauScale = 5.0

	// DefaultStepScale sets the step delta = DefaultStepScale / p, where p is the
	// observed fraction, unless WithStep overrides it.
	DefaultStepScale = 1.2

	// MaxAutoStep caps the derived step; SVT is guaranteed to converge for
	// steps in (0, 2).
	MaxAutoStep = 1.9

	// DefaultTolerance is the relative residual on observed entries that stops
	// the iteration.
	DefaultTolerance = 1e-4

	// DefaultMaxIter bounds the number of SVT iterations.
	DefaultMaxIter = 500

	// DefaultKeepObserved pins observed entries to their given values in the result.
	DefaultKeepObserved = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTauInvalid     = "completion: WithTau: tau must be finite and > 0"
	panicStepInvalid    = "completion: WithStep: step must be finite and > 0"
	panicTolInvalid     = "completion: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid = "completion: WithMaxIter: maxIter must be > 0"
	panicPolicyNil      = "completion: WithMissingPolicy: policy must be non-nil"
	panicExecPathEmpty  = "completion: NewExec: path must be non-empty"
)

// SVTOption mutates SVT settings.
type SVTOption func(*svtOptions)

// svtOptions is the effective SVT configuration. Zero tau/step mean "derive
// from the request".
type svtOptions struct {
	tau          float64
	step         float64
	tol          float64
	maxIter      int
	missing      MissingPolicy
	keepObserved bool
}

// defaultSVTOptions returns the documented defaults.
func defaultSVTOptions() svtOptions {
	return svtOptions{
		tol:          DefaultTolerance,
		maxIter:      DefaultMaxIter,
		missing:      ZeroIsMissing,
		keepObserved: DefaultKeepObserved,
	}
}

// WithTau fixes the singular value threshold.
// Larger values track the nuclear-norm minimiser more closely and converge
// more slowly.
func WithTau(tau float64) SVTOption {
	if !isPositiveFinite(tau) {
		panic(panicTauInvalid)
	}

	return func(o *svtOptions) { o.tau = tau }
}

// WithStep fixes the dual ascent step.
func WithStep(step float64) SVTOption {
	if !isPositiveFinite(step) {
		panic(panicStepInvalid)
	}

	return func(o *svtOptions) { o.step = step }
}

// WithTolerance sets the stopping residual ||P(X-M)||_F / ||P(M)||_F.
func WithTolerance(tol float64) SVTOption {
	if !isPositiveFinite(tol) {
		panic(panicTolInvalid)
	}

	return func(o *svtOptions) { o.tol = tol }
}

// WithMaxIter bounds the iteration count. Reaching it is not an error; the
// last iterate is returned.
func WithMaxIter(n int) SVTOption {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *svtOptions) { o.maxIter = n }
}

// WithMissingPolicy sets how unknown entries are recognised when a request
// carries no samples.
func WithMissingPolicy(p MissingPolicy) SVTOption {
	if p == nil {
		panic(panicPolicyNil)
	}

	return func(o *svtOptions) { o.missing = p }
}

// WithKeepObserved toggles pinning of observed entries in the result.
func WithKeepObserved(keep bool) SVTOption {
	return func(o *svtOptions) { o.keepObserved = keep }
}

// ExecOption mutates Exec settings.
type ExecOption func(*execOptions)

type execOptions struct {
	env []string // nil ⇒ inherit the parent environment
	dir string   // "" ⇒ parent working directory
}

// WithEnv sets the full environment of the external program.
func WithEnv(env ...string) ExecOption {
	return func(o *execOptions) { o.env = append([]string(nil), env...) }
}

// WithDir sets the working directory of the external program.
func WithDir(dir string) ExecOption {
	return func(o *execOptions) { o.dir = dir }
}

func isPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
