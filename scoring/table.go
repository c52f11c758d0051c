// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// Defaults for the transition/transversion nucleotide table.
const (
	DefaultTransition   = 1
	DefaultTransversion = -3
)

// Table is a symmetric substitution table over an Alphabet.
// scores holds n*n values in row-major alphabet order (offset = i*n + j).
type Table struct {
	alpha  Alphabet
	scores []int
	gap    int
}

var _ Scheme = (*Table)(nil)

// NewTable builds a table from rows given in alphabet order.
//
// Implementation:
//   - Stage 1: rows must be exactly n×n (n = alpha.Len()); else ErrIncompleteTable.
//   - Stage 2: copy into a flat buffer.
//   - Stage 3: reject any rows[i][j] != rows[j][i] with ErrAsymmetricTable.
//
// Complexity: O(n²).
func NewTable(alpha Alphabet, rows [][]int, gap int) (*Table, error) {
	n := alpha.Len()
	if n == 0 {
		return nil, ErrBadAlphabet
	}
	if len(rows) != n {
		return nil, fmt.Errorf("NewTable: %d rows for %d symbols: %w", len(rows), n, ErrIncompleteTable)
	}
	scores := make([]int, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewTable: row %q has %d scores for %d symbols: %w",
				alpha.symbols[i], len(row), n, ErrIncompleteTable)
		}
		copy(scores[i*n:(i+1)*n], row)
	}
	t := &Table{alpha: alpha, scores: scores, gap: gap}
	if err := t.checkSymmetric(); err != nil {
		return nil, err
	}

	return t, nil
}

// TableFromPairs builds a table from two-symbol keys such as "AG".
// Every ordered pair of the alphabet must be present; a missing pair is
// ErrIncompleteTable and a key that is not two alphabet symbols is
// ErrBadAlphabet. The result must be symmetric.
// Complexity: O(n² + len(pairs)).
func TableFromPairs(alpha Alphabet, pairs map[string]int, gap int) (*Table, error) {
	n := alpha.Len()
	if n == 0 {
		return nil, ErrBadAlphabet
	}
	for key := range pairs {
		if len(key) != 2 || !alpha.Contains(key) {
			return nil, fmt.Errorf("TableFromPairs: key %q: %w", key, ErrBadAlphabet)
		}
	}
	scores := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			key := string([]byte{alpha.symbols[i], alpha.symbols[j]})
			v, ok := pairs[key]
			if !ok {
				return nil, fmt.Errorf("TableFromPairs: %q: %w", key, ErrIncompleteTable)
			}
			scores[i*n+j] = v
		}
	}
	t := &Table{alpha: alpha, scores: scores, gap: gap}
	if err := t.checkSymmetric(); err != nil {
		return nil, err
	}

	return t, nil
}

// TransitionTransversion builds the nucleotide table used for DNA:
// identical bases score match, transitions (A↔G, C↔T) score transition and
// every transversion scores transversion.
func TransitionTransversion(match, transition, transversion, gap int) *Table {
	n := Nucleotides.Len()
	scores := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := Nucleotides.symbols[i], Nucleotides.symbols[j]
			switch {
			case a == b:
				scores[i*n+j] = match
			case isPurine(a) == isPurine(b):
				scores[i*n+j] = transition
			default:
				scores[i*n+j] = transversion
			}
		}
	}

	return &Table{alpha: Nucleotides, scores: scores, gap: gap}
}

// DefaultTransitionTransversion returns TransitionTransversion(3, 1, -3, -2).
func DefaultTransitionTransversion() *Table {
	return TransitionTransversion(DefaultMatch, DefaultTransition, DefaultTransversion, DefaultGap)
}

// isPurine reports whether b is A or G.
func isPurine(b byte) bool { return b == 'A' || b == 'G' }

// Score returns the table value for (a, b). A symbol outside the alphabet
// yields ErrIncompleteTable naming the pair.
// Complexity: O(1).
func (t *Table) Score(a, b byte) (int, error) {
	i, okA := t.alpha.Index(a)
	j, okB := t.alpha.Index(b)
	if !okA || !okB {
		return 0, fmt.Errorf("Table.Score(%q,%q): %w", a, b, ErrIncompleteTable)
	}

	return t.scores[i*t.alpha.Len()+j], nil
}

// GapPenalty returns the table's gap penalty.
func (t *Table) GapPenalty() int { return t.gap }

// Alphabet returns the alphabet the table is indexed by.
func (t *Table) Alphabet() Alphabet { return t.alpha }

// Rows returns a copy of the scores in alphabet order.
func (t *Table) Rows() [][]int {
	n := t.alpha.Len()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		copy(out[i], t.scores[i*n:(i+1)*n])
	}

	return out
}

// checkSymmetric reports the first (i<j) pair violating symmetry.
func (t *Table) checkSymmetric() error {
	n := t.alpha.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t.scores[i*n+j] != t.scores[j*n+i] {
				return fmt.Errorf("%q/%q: %w", t.alpha.symbols[i], t.alpha.symbols[j], ErrAsymmetricTable)
			}
		}
	}

	return nil
}
