// SPDX-License-Identifier: MIT

// Package completion - external program collaborator.
//
// Wire protocol (one process per call):
//
//	stdin : {"rows":R,"cols":C,"data":[...],"samples":[[i,j],...]}  ("samples":null when not given)
//	stdout: {"data":[...]}  or  {"error":"message"}
//
// A non-zero exit status is a failure regardless of stdout. Values must be
// finite: JSON has no NaN, so NaN-marked requests cannot cross this boundary.

package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// maxStderr bounds how much of the program's stderr is quoted in errors.
const maxStderr = 4096

// Exec is a Completer that delegates to an external program.
type Exec struct {
	path string
	args []string
	opts execOptions
}

var _ Completer = (*Exec)(nil)

// NewExec builds an Exec completer running path with args.
// It panics when path is empty.
func NewExec(path string, args []string, opts ...ExecOption) *Exec {
	if path == "" {
		panic(panicExecPathEmpty)
	}
	var o execOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &Exec{path: path, args: append([]string(nil), args...), opts: o}
}

// wireRequest is the stdin document. Samples stay nil when not given so the
// program sees null, not [].
type wireRequest struct {
	Rows    int       `json:"rows"`
	Cols    int       `json:"cols"`
	Data    []float64 `json:"data"`
	Samples [][2]int  `json:"samples"`
}

// wireResponse is the stdout document.
type wireResponse struct {
	Data  []float64 `json:"data"`
	Error string    `json:"error,omitempty"`
}

// Complete runs the program once and decodes its answer.
// Implementation:
//   - Stage 1: validate and encode req.
//   - Stage 2: run with exec.CommandContext; stderr is captured for errors.
//   - Stage 3: decode stdout; "error" maps to ErrRemote.
//
// Errors:
//   - ErrBadRequest, ErrProtocol (encode/decode), ErrProcess (start/exit),
//     ErrRemote (program-reported), ctx.Err() on cancellation.
func (e *Exec) Complete(ctx context.Context, req Request) ([]float64, error) {
	if err := req.Validate(); err != nil {
		return nil, completionErrorf(opExec, err)
	}
	payload, err := json.Marshal(toWire(req))
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w: %w", opExec, ErrProtocol, err)
	}

	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = bytes.NewReader(payload)
	cmd.Env = e.opts.env
	cmd.Dir = e.opts.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err = cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, completionErrorf(opExec, ctxErr)
		}
		return nil, fmt.Errorf("%s: %s: %w: %w: %s", opExec, e.path, ErrProcess, err, clip(stderr.String()))
	}

	var resp wireResponse
	if err = json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w: %w", opExec, ErrProtocol, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%s: %w: %w", opExec, ErrRemote, errors.New(resp.Error))
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%s: missing data: %w", opExec, ErrProtocol)
	}

	return resp.Data, nil
}

func toWire(req Request) wireRequest {
	w := wireRequest{Rows: req.Rows, Cols: req.Cols, Data: req.Data}
	if req.Data == nil {
		w.Data = []float64{}
	}
	if req.Samples != nil {
		w.Samples = make([][2]int, len(req.Samples))
		for i, s := range req.Samples {
			w.Samples[i] = [2]int{s.Row, s.Col}
		}
	}

	return w
}

// clip trims stderr for inclusion in an error message.
func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderr {
		return s[:maxStderr] + "..."
	}

	return s
}
