// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for randomized construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No hidden global state beyond the runtime's default random source.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand/v2"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRandomMin is the inclusive lower bound of Random samples.
	DefaultRandomMin = 0.0

	// DefaultRandomMax is the exclusive upper bound of Random samples.
	DefaultRandomMax = 1.0

	// seedMix decorrelates the two PCG words derived from a single seed.
	seedMix = 0x9e3779b97f4a7c15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSource = "matrix: WithSource: src must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	src rand.Source // nil ⇒ runtime default source (not reproducible)
}

// WithSource draws Random samples from src.
// Implementation:
//   - Stage 1: reject nil (programmer error).
//   - Stage 2: return a setter writing src into Options.
//
// Notes:
//   - A Random call consumes src sequentially; reuse a fresh source per call
//     to reproduce a matrix.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// WithSeed is shorthand for WithSource(rand.NewPCG(seed, seed^mix)).
// Two Random calls with the same seed and shape produce equal matrices.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^seedMix))
}

// gatherOptions applies user setters over defaults.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
