// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// Grid is a row-major matrix of int values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Grid struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Grid)(nil)

// New creates an r×c zero grid.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a grid from a rectangular [][]int, copying the values.
// Returns ErrInvalidDimensions for an empty or ragged input.
// Complexity: O(r*c).
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != g.c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), g.c, ErrInvalidDimensions)
		}
		copy(g.data[i*g.c:(i+1)*g.c], row)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// At returns the value at (row, col), or ErrOutOfRange wrapped with context.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Set assigns v at (row, col), or returns ErrOutOfRange wrapped with context.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v int) error {
	if !g.InBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	g.data[row*g.c+col] = v

	return nil
}

// RowView returns row i as a slice sharing the grid's storage.
// Writes through the slice mutate the grid.
// Complexity: O(1).
func (g *Grid) RowView(i int) ([]int, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return g.data[i*g.c : (i+1)*g.c : (i+1)*g.c], nil
}

// ToRows returns a copy of the grid as [][]int.
func (g *Grid) ToRows() [][]int {
	out := make([][]int, g.r)
	for i := range out {
		out[i] = make([]int, g.c)
		copy(out[i], g.data[i*g.c:(i+1)*g.c])
	}

	return out
}

// Max returns the largest value and the first (row-major) coordinate holding it.
// Complexity: O(r*c).
func (g *Grid) Max() (value, row, col int) {
	value = g.data[0]
	for idx, v := range g.data {
		if v > value {
			value, row, col = v, idx/g.c, idx%g.c
		}
	}

	return value, row, col
}

// Clone returns a deep copy of the grid.
// Complexity: O(r*c).
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Grid{r: g.r, c: g.c, data: data}
}

// String renders one bracketed row per line with values right-aligned to the
// widest entry, e.g.
//
//	[0 0 0]
//	[0 3 1]
//	[0 1 6]
func (g *Grid) String() string {
	width := 1
	for _, v := range g.data {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%*d", width, g.data[i*g.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
