// SPDX-License-Identifier: MIT

package scoring

import "fmt"

// noSymbol marks a byte that is not part of an alphabet.
const noSymbol = -1

// Alphabet is an ordered set of distinct single-byte symbols.
// The position of a symbol is its index into substitution tables.
type Alphabet struct {
	symbols string
	index   [256]int16
}

// Nucleotides is the DNA alphabet in A, C, G, T order.
var Nucleotides = MustAlphabet("ACGT")

// NewAlphabet builds an Alphabet from symbols. Returns ErrBadAlphabet when
// symbols is empty or repeats a byte.
// Complexity: O(len(symbols)).
func NewAlphabet(symbols string) (Alphabet, error) {
	var a Alphabet
	if len(symbols) == 0 {
		return a, ErrBadAlphabet
	}
	for i := range a.index {
		a.index[i] = noSymbol
	}
	for i := 0; i < len(symbols); i++ {
		s := symbols[i]
		if a.index[s] != noSymbol {
			return Alphabet{}, fmt.Errorf("NewAlphabet: symbol %q repeated: %w", s, ErrBadAlphabet)
		}
		a.index[s] = int16(i)
	}
	a.symbols = symbols

	return a, nil
}

// MustAlphabet is NewAlphabet that panics on error. Intended for package-level
// literals only.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}

	return a
}

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the symbols in alphabet order.
func (a Alphabet) Symbols() string { return a.symbols }

// Index returns the position of s and whether s belongs to the alphabet.
// Complexity: O(1).
func (a Alphabet) Index(s byte) (int, bool) {
	if len(a.symbols) == 0 {
		return 0, false
	}
	i := a.index[s]

	return int(i), i != noSymbol
}

// Contains reports whether every byte of seq belongs to the alphabet.
func (a Alphabet) Contains(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if _, ok := a.Index(seq[i]); !ok {
			return false
		}
	}

	return true
}
