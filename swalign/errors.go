// SPDX-License-Identifier: MIT

package swalign

import "errors"

// Sentinel errors. Match with errors.Is; returned values may carry context
// wrapped around them with %w.
var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("swalign: input sequences must be non-empty")

	// ErrNoLocalAlignment indicates the grid maximum is 0, so no local
	// alignment with a positive score exists.
	ErrNoLocalAlignment = errors.New("swalign: no positive-scoring local alignment")

	// ErrNilScheme indicates a nil scoring.Scheme was supplied.
	ErrNilScheme = errors.New("swalign: scoring scheme is nil")

	// ErrNilGrid indicates a nil grid was passed to Trace or PathScores.
	ErrNilGrid = errors.New("swalign: grid is nil")

	// ErrBadGrid indicates a grid that violates the local-alignment boundary
	// condition (non-zero value in row 0 or column 0 reached by a traceback).
	ErrBadGrid = errors.New("swalign: grid violates boundary condition")

	// ErrBadPath indicates an empty path, a step that is not a single
	// diagonal/up/left move, or a coordinate outside the sequences.
	ErrBadPath = errors.New("swalign: malformed trace path")
)
