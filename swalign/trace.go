// SPDX-License-Identifier: MIT

package swalign

import (
	"fmt"

	"github.com/katalvlaran/seqalign/grid"
)

// Trace walks back from start to the first zero-valued cell and returns the
// visited coordinates, start first and the zero cell last.
//
// Each step reads the diagonal, up and left neighbours of the current cell
// and moves to the largest one; ties go to diagonal, then up, then left.
// Every step lowers row+col by at least one, so the walk takes at most
// start.Row+start.Col steps. Only the grid value at start is used; start.Score
// is ignored.
//
// Errors:
//   - ErrNilGrid          — g is nil.
//   - grid.ErrOutOfRange  — start is outside g (wrapped).
//   - ErrNoLocalAlignment — the start cell holds 0.
//   - ErrBadGrid          — a non-zero boundary cell was reached.
//
// Complexity: O(start.Row + start.Col) time, O(1) memory besides the path.
func Trace(g *grid.Grid, start Cell) (Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	v, err := g.At(start.Row, start.Col)
	if err != nil {
		return nil, fmt.Errorf("Trace: %w", err)
	}
	if v == 0 {
		return nil, ErrNoLocalAlignment
	}

	cur := start.Coord()
	path := Path{cur}
	for v != 0 {
		if cur.Row == 0 || cur.Col == 0 {
			return nil, fmt.Errorf("Trace: cell %v holds %d: %w", cur, v, ErrBadGrid)
		}
		up, err := g.RowView(cur.Row - 1)
		if err != nil {
			return nil, err
		}
		row, err := g.RowView(cur.Row)
		if err != nil {
			return nil, err
		}

		// One three-way comparison; a move is always committed.
		next, best := Coord{Row: cur.Row - 1, Col: cur.Col - 1}, up[cur.Col-1]
		if s := up[cur.Col]; s > best {
			next, best = Coord{Row: cur.Row - 1, Col: cur.Col}, s
		}
		if s := row[cur.Col-1]; s > best {
			next, best = Coord{Row: cur.Row, Col: cur.Col - 1}, s
		}

		path = append(path, next)
		cur, v = next, best
	}

	return path, nil
}

// traceStored follows the directions recorded by a StoredDirections build.
func traceStored(mx *matrix) (Path, error) {
	if mx.max.Score == 0 {
		return nil, ErrNoLocalAlignment
	}

	cur := mx.max.Coord()
	path := Path{cur}
	for {
		v, err := mx.scores.At(cur.Row, cur.Col)
		if err != nil {
			return nil, fmt.Errorf("Trace: %w", err)
		}
		if v == 0 {
			return path, nil
		}
		d, err := mx.dirs.At(cur.Row, cur.Col)
		if err != nil {
			return nil, fmt.Errorf("Trace: %w", err)
		}
		switch Direction(d) {
		case DirDiag:
			cur = Coord{Row: cur.Row - 1, Col: cur.Col - 1}
		case DirUp:
			cur = Coord{Row: cur.Row - 1, Col: cur.Col}
		case DirLeft:
			cur = Coord{Row: cur.Row, Col: cur.Col - 1}
		default:
			return nil, fmt.Errorf("Trace: cell %v holds %d with no direction: %w", cur, v, ErrBadGrid)
		}
		path = append(path, cur)
	}
}
