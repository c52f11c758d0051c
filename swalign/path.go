// SPDX-License-Identifier: MIT

package swalign

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/grid"
)

// String formats the path as "(2,2) -> (1,1) -> (0,0)".
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "(%d,%d)", c.Row, c.Col)
	}

	return sb.String()
}

// PathScores returns the grid value at every coordinate of p, in path order.
// For a path produced by Trace only the last value is 0.
func PathScores(g *grid.Grid, p Path) ([]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	out := make([]int, len(p))
	for i, c := range p {
		v, err := g.At(c.Row, c.Col)
		if err != nil {
			return nil, fmt.Errorf("PathScores: step %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
