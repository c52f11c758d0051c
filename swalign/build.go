// SPDX-License-Identifier: MIT

package swalign

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/seqalign/grid"
	"github.com/katalvlaran/seqalign/scoring"
)

// matrix is the output of one fill: scores, optional directions and the
// first maximal cell.
type matrix struct {
	scores *grid.Grid
	dirs   *grid.Grid // nil unless StoredDirections
	max    Cell
}

// Build fills the Smith–Waterman score grid for seq1 (rows) and seq2 (columns).
//
// Algorithm Outline:
//  1. n = len(seq1), m = len(seq2). Allocate an (n+1)×(m+1) zero grid, so
//     row 0 and column 0 hold the local-alignment boundary.
//  2. For every cell (i,j), i,j ≥ 1, in an order where the diagonal, up and
//     left neighbours are already known:
//     H[i][j] = max(0, diag+score(seq1[i-1],seq2[j-1]), up+gap, left+gap)
//  3. Track the maximum with a strict '>' so the first maximal cell in
//     row-major order wins ties. An all-zero grid reports Cell{0, 0, 0}.
//
// Errors:
//   - ErrEmptySequence — either sequence is empty (nothing is allocated).
//   - ErrNilScheme     — scheme is nil.
//   - scheme errors (e.g. scoring.ErrIncompleteTable) wrapped with the cell.
//
// Complexity: O(n·m) time and memory.
func Build(seq1, seq2 string, scheme scoring.Scheme, opts ...Option) (*grid.Grid, Cell, error) {
	mx, err := build(seq1, seq2, scheme, newConfig(opts...))
	if err != nil {
		return nil, Cell{}, err
	}

	return mx.scores, mx.max, nil
}

func build(seq1, seq2 string, scheme scoring.Scheme, cfg config) (*matrix, error) {
	if len(seq1) == 0 || len(seq2) == 0 {
		return nil, ErrEmptySequence
	}
	if scheme == nil {
		return nil, ErrNilScheme
	}

	n, m := len(seq1), len(seq2)
	scores, err := grid.New(n+1, m+1)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	mx := &matrix{scores: scores}
	if cfg.traceMode == StoredDirections {
		if mx.dirs, err = grid.New(n+1, m+1); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	switch cfg.fill {
	case AntiDiagonal:
		err = mx.fillAntiDiagonal(seq1, seq2, scheme, cfg.workers)
	default:
		err = mx.fillRowMajor(seq1, seq2, scheme)
	}
	if err != nil {
		return nil, err
	}

	return mx, nil
}

// recurrence evaluates one cell from its three predecessors. The strict '>'
// chain makes diagonal win over up and up over left on equal candidates, and
// returns DirNone when the cell is clamped to zero.
func recurrence(diag, up, left, sub, gap int) (int, Direction) {
	best, dir := 0, DirNone
	if c := diag + sub; c > best {
		best, dir = c, DirDiag
	}
	if c := up + gap; c > best {
		best, dir = c, DirUp
	}
	if c := left + gap; c > best {
		best, dir = c, DirLeft
	}

	return best, dir
}

// fillRowMajor fills rows 1..n on the calling goroutine, tracking the maximum
// as it goes.
func (mx *matrix) fillRowMajor(seq1, seq2 string, scheme scoring.Scheme) error {
	gap := scheme.GapPenalty()
	for i := 1; i <= len(seq1); i++ {
		prev, err := mx.scores.RowView(i - 1)
		if err != nil {
			return err
		}
		cur, err := mx.scores.RowView(i)
		if err != nil {
			return err
		}
		var dirRow []int
		if mx.dirs != nil {
			if dirRow, err = mx.dirs.RowView(i); err != nil {
				return err
			}
		}

		a := seq1[i-1]
		for j := 1; j <= len(seq2); j++ {
			sub, err := scheme.Score(a, seq2[j-1])
			if err != nil {
				return fmt.Errorf("Build: cell (%d,%d): %w", i, j, err)
			}
			v, d := recurrence(prev[j-1], prev[j], cur[j-1], sub, gap)
			cur[j] = v
			if dirRow != nil {
				dirRow[j] = int(d)
			}
			if v > mx.max.Score {
				mx.max = Cell{Row: i, Col: j, Score: v}
			}
		}
	}

	return nil
}

// fillAntiDiagonal fills the grid one anti-diagonal (i+j == d) at a time.
// Cells on a diagonal depend only on earlier diagonals, so each diagonal is
// split into contiguous chunks evaluated by up to workers goroutines.
// The maximum is found afterwards by a row-major scan to keep the tie policy.
func (mx *matrix) fillAntiDiagonal(seq1, seq2 string, scheme scoring.Scheme, workers int) error {
	n, m := len(seq1), len(seq2)
	gap := scheme.GapPenalty()

	// fillRange computes cells (i, d-i) for i in [lo, hi].
	fillRange := func(d, lo, hi int) error {
		for i := lo; i <= hi; i++ {
			j := d - i
			prev, err := mx.scores.RowView(i - 1)
			if err != nil {
				return err
			}
			cur, err := mx.scores.RowView(i)
			if err != nil {
				return err
			}
			sub, err := scheme.Score(seq1[i-1], seq2[j-1])
			if err != nil {
				return fmt.Errorf("Build: cell (%d,%d): %w", i, j, err)
			}
			v, dir := recurrence(prev[j-1], prev[j], cur[j-1], sub, gap)
			cur[j] = v
			if mx.dirs != nil {
				if err = mx.dirs.Set(i, j, int(dir)); err != nil {
					return err
				}
			}
		}

		return nil
	}

	errs := make([]error, workers)
	for d := 2; d <= n+m; d++ {
		lo, hi := max(1, d-m), min(n, d-1)
		count := hi - lo + 1
		chunks := min(workers, count/minCellsPerWorker)
		if chunks <= 1 {
			if err := fillRange(d, lo, hi); err != nil {
				return err
			}
			continue
		}

		size := (count + chunks - 1) / chunks
		var wg sync.WaitGroup
		for w := 0; w < chunks; w++ {
			from := lo + w*size
			to := min(hi, from+size-1)
			if from > to {
				errs[w] = nil
				continue
			}
			wg.Add(1)
			go func(w, from, to int) {
				defer wg.Done()
				errs[w] = fillRange(d, from, to)
			}(w, from, to)
		}
		wg.Wait()
		for _, err := range errs[:chunks] {
			if err != nil {
				return err
			}
		}
	}

	v, r, c := mx.scores.Max()
	mx.max = Cell{Row: r, Col: c, Score: v}

	return nil
}
