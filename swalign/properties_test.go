// SPDX-License-Identifier: MIT

package swalign_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/grid"
	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/swalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// propertyRounds is the number of random sequence pairs checked per scheme.
const propertyRounds = 300

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// randomDNA returns a sequence of n bases drawn from r.
func randomDNA(r *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[r.Intn(len(bases))]
	}

	return string(b)
}

// expectedCell re-applies the recurrence to the stored predecessors.
func expectedCell(t *testing.T, g *grid.Grid, scheme scoring.Scheme, seq1, seq2 string, i, j int) int {
	t.Helper()
	at := func(r, c int) int {
		v, err := g.At(r, c)
		require.NoError(t, err)
		return v
	}
	sub, err := scheme.Score(seq1[i-1], seq2[j-1])
	require.NoError(t, err)
	gap := scheme.GapPenalty()

	return max(0, at(i-1, j-1)+sub, at(i-1, j)+gap, at(i, j-1)+gap)
}

// TestProperties_RandomPairs checks the grid, traceback and rendering
// invariants over seeded random inputs for both scoring policies and both
// trace modes.
func TestProperties_RandomPairs(t *testing.T) {
	schemes := map[string]scoring.Scheme{
		"Uniform":                scoring.DefaultUniform(),
		"TransitionTransversion": scoring.DefaultTransitionTransversion(),
	}
	for name, scheme := range schemes {
		t.Run(name, func(t *testing.T) {
			r := newRand(42)
			for round := 0; round < propertyRounds; round++ {
				seq1 := randomDNA(r, 1+r.Intn(14))
				seq2 := randomDNA(r, 1+r.Intn(14))
				checkGrid(t, scheme, seq1, seq2)
				for _, mode := range []swalign.TraceMode{swalign.Recompute, swalign.StoredDirections} {
					checkAlignment(t, scheme, seq1, seq2, mode)
				}
			}
		})
	}
}

// checkGrid asserts boundary zeros, non-negativity, the recurrence and the
// first-maximum rule.
func checkGrid(t *testing.T, scheme scoring.Scheme, seq1, seq2 string) {
	t.Helper()
	g, maxCell, err := swalign.Build(seq1, seq2, scheme)
	require.NoError(t, err)
	require.Equal(t, len(seq1)+1, g.Rows())
	require.Equal(t, len(seq2)+1, g.Cols())

	rows := g.ToRows()
	best, first := 0, swalign.Cell{}
	for i, row := range rows {
		for j, v := range row {
			if i == 0 || j == 0 {
				assert.Zero(t, v, "boundary (%d,%d) of %s/%s", i, j, seq1, seq2)
				continue
			}
			assert.GreaterOrEqual(t, v, 0)
			assert.Equal(t, expectedCell(t, g, scheme, seq1, seq2, i, j), v, "cell (%d,%d) of %s/%s", i, j, seq1, seq2)
			if v > best {
				best, first = v, swalign.Cell{Row: i, Col: j, Score: v}
			}
		}
	}
	assert.Equal(t, first, maxCell, "%s/%s", seq1, seq2)
}

// checkAlignment asserts traceback termination and rendering invariants.
func checkAlignment(t *testing.T, scheme scoring.Scheme, seq1, seq2 string, mode swalign.TraceMode) {
	t.Helper()
	aln, err := swalign.Align(seq1, seq2, scheme, swalign.WithTraceMode(mode))
	if err != nil {
		require.ErrorIs(t, err, swalign.ErrNoLocalAlignment)
		_, maxCell, buildErr := swalign.Build(seq1, seq2, scheme)
		require.NoError(t, buildErr)
		assert.Zero(t, maxCell.Score)
		return
	}

	require.NotEmpty(t, aln.Path)
	assert.Equal(t, aln.Max.Coord(), aln.Path[0])
	assert.LessOrEqual(t, len(aln.Path)-1, len(seq1)+len(seq2), "trace must finish within |seq1|+|seq2| steps")

	scores, err := swalign.PathScores(aln.Grid, aln.Path)
	require.NoError(t, err)
	assert.Zero(t, scores[len(scores)-1], "path must end on a zero cell")
	for _, s := range scores[:len(scores)-1] {
		assert.Positive(t, s, "only the last cell may be zero")
	}

	res := aln.Result
	require.Len(t, res.Aligned2, len(res.Aligned1))
	require.Len(t, res.Similarity, len(res.Aligned1))
	assert.Len(t, res.Aligned1, len(aln.Path)-1)
	for i := 0; i < len(res.Similarity); i++ {
		a, b := res.Aligned1[i], res.Aligned2[i]
		wantMatch := a == b && a != swalign.DefaultGapSymbol
		assert.Equal(t, wantMatch, res.Similarity[i] == swalign.DefaultMatchMarker,
			"column %d of %q/%q", i, res.Aligned1, res.Aligned2)
	}
}
