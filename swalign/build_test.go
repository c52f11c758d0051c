// SPDX-License-Identifier: MIT

package swalign_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/swalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_EmptyInput verifies that Build rejects empty sequences before
// allocating anything.
func TestBuild_EmptyInput(t *testing.T) {
	u := scoring.DefaultUniform()

	g, _, err := swalign.Build("", "ACGT", u)
	assert.ErrorIs(t, err, swalign.ErrEmptySequence, "empty first sequence should error")
	assert.Nil(t, g)

	_, _, err = swalign.Build("ACGT", "", u)
	assert.ErrorIs(t, err, swalign.ErrEmptySequence, "empty second sequence should error")
}

// TestBuild_NilScheme verifies the nil-scheme guard.
func TestBuild_NilScheme(t *testing.T) {
	_, _, err := swalign.Build("A", "A", nil)
	assert.ErrorIs(t, err, swalign.ErrNilScheme)
}

// TestBuild_ACvsAC checks the hand-computed 3×3 grid.
func TestBuild_ACvsAC(t *testing.T) {
	g, maxCell, err := swalign.Build("AC", "AC", scoring.Uniform{Match: 3, Mismatch: -3, Gap: -2})
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 0, 0},
		{0, 3, 1},
		{0, 1, 6},
	}, g.ToRows())
	assert.Equal(t, swalign.Cell{Row: 2, Col: 2, Score: 6}, maxCell)
}

// TestBuild_ReferencePair checks the grid for the classic TGTTACGG/GGTTGACTA
// pair under the uniform scheme.
func TestBuild_ReferencePair(t *testing.T) {
	g, maxCell, err := swalign.Build("TGTTACGG", "GGTTGACTA", scoring.DefaultUniform())
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 3, 3, 1, 0, 0, 3, 1},
		{0, 3, 3, 1, 1, 6, 4, 2, 1, 0},
		{0, 1, 1, 6, 4, 4, 3, 1, 5, 3},
		{0, 0, 0, 4, 9, 7, 5, 3, 4, 2},
		{0, 0, 0, 2, 7, 6, 10, 8, 6, 7},
		{0, 0, 0, 0, 5, 4, 8, 13, 11, 9},
		{0, 3, 3, 1, 3, 8, 6, 11, 10, 8},
		{0, 3, 6, 4, 2, 6, 5, 9, 8, 7},
	}, g.ToRows())
	assert.Equal(t, swalign.Cell{Row: 6, Col: 7, Score: 13}, maxCell)
}

// TestBuild_TableScheme checks that the transition/transversion table feeds
// the same recurrence.
func TestBuild_TableScheme(t *testing.T) {
	g, maxCell, err := swalign.Build("TGTTACGG", "GGTTGACTA", scoring.DefaultTransitionTransversion())
	require.NoError(t, err)

	assert.Equal(t, swalign.Cell{Row: 6, Col: 7, Score: 13}, maxCell)
	row5, err := g.RowView(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, 7, 10, 10, 8, 6, 11}, row5)
}

// TestBuild_FirstMaximumWins verifies the strict '>' tie policy: "AAAA" vs
// "AA" reaches 6 at (2,2), (3,2) and (4,2); the first one is reported.
func TestBuild_FirstMaximumWins(t *testing.T) {
	for _, fill := range []swalign.FillMode{swalign.RowMajor, swalign.AntiDiagonal} {
		_, maxCell, err := swalign.Build("AAAA", "AA", scoring.DefaultUniform(), swalign.WithFill(fill))
		require.NoError(t, err)
		assert.Equal(t, swalign.Cell{Row: 2, Col: 2, Score: 6}, maxCell, "fill mode %d", fill)
	}
}

// TestBuild_AllZero reports Cell{} when nothing scores above zero.
func TestBuild_AllZero(t *testing.T) {
	g, maxCell, err := swalign.Build("A", "T", scoring.DefaultUniform())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, g.ToRows())
	assert.Equal(t, swalign.Cell{}, maxCell)
}

// TestBuild_IncompleteTable surfaces the table error with the cell position.
func TestBuild_IncompleteTable(t *testing.T) {
	_, _, err := swalign.Build("ACGT", "ACNT", scoring.DefaultTransitionTransversion())
	assert.ErrorIs(t, err, scoring.ErrIncompleteTable)
	assert.ErrorContains(t, err, "cell (1,3)")

	_, _, err = swalign.Build("ACGT", "ACNT", scoring.DefaultTransitionTransversion(), swalign.WithFill(swalign.AntiDiagonal))
	assert.ErrorIs(t, err, scoring.ErrIncompleteTable)
}
