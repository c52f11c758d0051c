// SPDX-License-Identifier: MIT

package swalign

import "fmt"

// Render turns a trace path into aligned tracks.
//
// The path is walked in the order given (alignment end → start). For each
// step, a decrease in row emits seq1[prev.Row-1] into the first track and
// anything else emits the gap symbol; columns and seq2 are handled the same
// way. Both tracks are reversed at the end. The similarity line holds the
// match marker where both tracks carry the same symbol and neither is a gap,
// and a blank elsewhere.
//
// A single-cell path renders as three empty strings.
//
// Errors:
//   - ErrBadPath — empty path, a step that is not one diagonal/up/left move,
//     or a coordinate outside [0,len(seq1)]×[0,len(seq2)].
//
// Complexity: O(len(path)).
func Render(path Path, seq1, seq2 string, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if len(path) == 0 {
		return Result{}, fmt.Errorf("Render: empty path: %w", ErrBadPath)
	}
	head, tail := path[0], path[len(path)-1]
	if head.Row > len(seq1) || head.Col > len(seq2) || tail.Row < 0 || tail.Col < 0 {
		return Result{}, fmt.Errorf("Render: path %v..%v outside %dx%d: %w",
			head, tail, len(seq1), len(seq2), ErrBadPath)
	}

	steps := len(path) - 1
	t1 := make([]byte, steps)
	t2 := make([]byte, steps)
	gap1 := make([]bool, steps)
	gap2 := make([]bool, steps)

	// Fill back to front so the tracks come out start → end.
	prev := head
	for k, cur := range path[1:] {
		dr, dc := prev.Row-cur.Row, prev.Col-cur.Col
		if dr < 0 || dr > 1 || dc < 0 || dc > 1 || dr+dc == 0 {
			return Result{}, fmt.Errorf("Render: step %v -> %v: %w", prev, cur, ErrBadPath)
		}
		pos := steps - 1 - k
		if dr == 1 {
			t1[pos] = seq1[prev.Row-1]
		} else {
			t1[pos], gap1[pos] = cfg.gapSymbol, true
		}
		if dc == 1 {
			t2[pos] = seq2[prev.Col-1]
		} else {
			t2[pos], gap2[pos] = cfg.gapSymbol, true
		}
		prev = cur
	}

	sim := make([]byte, steps)
	for i := range sim {
		if !gap1[i] && !gap2[i] && t1[i] == t2[i] {
			sim[i] = cfg.matchMarker
		} else {
			sim[i] = similarityBlank
		}
	}

	return Result{Aligned1: string(t1), Aligned2: string(t2), Similarity: string(sim)}, nil
}

// Matches counts identical columns.
func (r Result) Matches() int {
	n := 0
	for i := 0; i < len(r.Similarity); i++ {
		if r.Similarity[i] != similarityBlank {
			n++
		}
	}

	return n
}
