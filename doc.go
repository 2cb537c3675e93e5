// Package matcompl is a small toolkit for dense matrix arithmetic and
// low-rank matrix completion.
//
// 🚀 What is inside?
//
//	A generic, row-major matrix container and a narrow boundary to
//	completion solvers:
//		• matrix/     - Dense[T] over float32/float64: bounds-checked access,
//		                row views, Add, Mul, Dot, random and identity builders
//		• completion/ - the Completer boundary, a native SVT solver and an
//		                external-process solver speaking JSON
//
// ✨ Why choose matcompl?
//
//   - Errors, not panics – every precondition returns a sentinel you can errors.Is
//   - One owner per buffer – no hidden aliasing between matrices
//   - Solver-agnostic – anything that maps flattened data to flattened data plugs in
//
// Quick example:
//
//	partial := matrix.Must(matrix.New(3, 3, data))
//	full, err := completion.Complete(ctx, completion.NewSVT(), partial, nil)
//
// See examples/ for a runnable low-rank recovery demo.
//
//	go get github.com/katalvlaran/matcompl
package matcompl
