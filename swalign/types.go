// SPDX-License-Identifier: MIT

package swalign

import "github.com/katalvlaran/seqalign/grid"

// Coord is a (row, col) position in the score grid. Row i corresponds to
// seq1[i-1] and column j to seq2[j-1]; row 0 and column 0 are the boundary.
type Coord struct {
	Row, Col int
}

// Cell is a grid coordinate together with its score.
type Cell struct {
	Row, Col int
	Score    int
}

// Coord drops the score.
func (c Cell) Coord() Coord { return Coord{Row: c.Row, Col: c.Col} }

// Path is an ordered list of coordinates from the alignment's end (the
// maximum cell) back to its start (the first zero-valued cell reached).
type Path []Coord

// Direction is the predecessor a cell's score was derived from.
type Direction int

const (
	// DirNone marks a cell clamped to zero (a fresh alignment start).
	DirNone Direction = iota
	// DirDiag aligns seq1[i-1] with seq2[j-1].
	DirDiag
	// DirUp aligns seq1[i-1] against a gap.
	DirUp
	// DirLeft aligns seq2[j-1] against a gap.
	DirLeft
)

// String returns a short name for d.
func (d Direction) String() string {
	switch d {
	case DirDiag:
		return "diag"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// TraceMode selects how Align recovers the path.
//
//   - Recompute        — compare the three neighbours of each cell while
//     walking back. No extra memory.
//   - StoredDirections — record a Direction per cell during Build and follow
//     it. One extra grid of memory.
type TraceMode int

const (
	// Recompute derives each step from neighbour scores.
	Recompute TraceMode = iota
	// StoredDirections follows pointers recorded during the fill.
	StoredDirections
)

// FillMode selects the grid fill order.
//
//   - RowMajor     — single goroutine, row by row.
//   - AntiDiagonal — cells with equal i+j are independent and are split
//     across worker goroutines; the result is identical to RowMajor.
type FillMode int

const (
	// RowMajor fills row by row on the calling goroutine.
	RowMajor FillMode = iota
	// AntiDiagonal fills each anti-diagonal concurrently.
	AntiDiagonal
)

// Result holds the rendered alignment. All three strings have equal length.
type Result struct {
	Aligned1   string // seq1 track, gaps as the gap symbol
	Aligned2   string // seq2 track, gaps as the gap symbol
	Similarity string // match marker where both tracks hold the same symbol
}

// Alignment is everything Align produced for one pair of sequences.
type Alignment struct {
	Grid   *grid.Grid
	Max    Cell
	Path   Path
	Result Result
}

// Spans returns the half-open ranges [start, end) of seq1 and seq2 covered by
// the alignment.
func (a *Alignment) Spans() (start1, end1, start2, end2 int) {
	first, last := a.Path[len(a.Path)-1], a.Path[0]

	return first.Row, last.Row, first.Col, last.Col
}
