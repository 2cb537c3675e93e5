// SPDX-License-Identifier: MIT
// Package completion: sentinel error set.

package completion

import (
	"errors"
	"fmt"
)

var (
	// ErrCompletionFailed tags every failure raised by a collaborator call,
	// including a result of the wrong length. The collaborator's own error is
	// wrapped alongside, so errors.Is matches both.
	ErrCompletionFailed = errors.New("completion: collaborator failed")

	// ErrNilCompleter indicates that no collaborator was supplied.
	ErrNilCompleter = errors.New("completion: nil completer")

	// ErrBadRequest indicates a Request whose data length does not match its shape.
	ErrBadRequest = errors.New("completion: malformed request")

	// ErrSVDFailed indicates that the SVD factorization did not succeed.
	ErrSVDFailed = errors.New("completion: svd factorization failed")

	// ErrProcess indicates that the external program could not run or exited non-zero.
	ErrProcess = errors.New("completion: external process failed")

	// ErrProtocol indicates an unreadable response from the external program.
	ErrProtocol = errors.New("completion: protocol error")

	// ErrRemote carries an error reported by the external program itself.
	ErrRemote = errors.New("completion: remote error")
)

// Operation tags for uniform error wrapping.
const (
	opComplete = "Complete"
	opSVT      = "SVT"
	opExec     = "Exec"
)

// completionErrorf wraps err with an operation tag, preserving it via %w.
func completionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// failedErrorf tags cause with ErrCompletionFailed while keeping cause matchable.
func failedErrorf(cause error) error {
	return fmt.Errorf("%s: %w: %w", opComplete, ErrCompletionFailed, cause)
}
