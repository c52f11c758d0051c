// SPDX-License-Identifier: MIT

package swalign

import "github.com/katalvlaran/seqalign/scoring"

// Align runs the full pipeline: Build, guard against an all-zero grid,
// Trace (or follow stored directions), then Render.
//
// Example:
//
//	aln, err := Align("AC", "AC", scoring.Uniform{Match: 3, Mismatch: -3, Gap: -2})
//	// aln.Max         == Cell{Row: 2, Col: 2, Score: 6}
//	// aln.Path        == Path{{2, 2}, {1, 1}, {0, 0}}
//	// aln.Result      == Result{"AC", "AC", "**"}
//
// Errors:
//   - ErrEmptySequence, ErrNilScheme and scheme errors from Build.
//   - ErrNoLocalAlignment when the grid maximum is 0; no traceback is run.
//
// No partial Alignment is returned on error.
func Align(seq1, seq2 string, scheme scoring.Scheme, opts ...Option) (*Alignment, error) {
	cfg := newConfig(opts...)
	mx, err := build(seq1, seq2, scheme, cfg)
	if err != nil {
		return nil, err
	}
	if mx.max.Score == 0 {
		return nil, ErrNoLocalAlignment
	}

	var path Path
	if cfg.traceMode == StoredDirections {
		path, err = traceStored(mx)
	} else {
		path, err = Trace(mx.scores, mx.max)
	}
	if err != nil {
		return nil, err
	}

	res, err := Render(path, seq1, seq2, opts...)
	if err != nil {
		return nil, err
	}

	return &Alignment{Grid: mx.scores, Max: mx.max, Path: path, Result: res}, nil
}
