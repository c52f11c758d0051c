// SPDX-License-Identifier: MIT

package scoring

import "errors"

var (
	// ErrBadAlphabet indicates an empty alphabet or one with repeated symbols.
	ErrBadAlphabet = errors.New("scoring: alphabet must be non-empty with distinct symbols")

	// ErrIncompleteTable indicates a symbol pair with no score in a substitution table.
	ErrIncompleteTable = errors.New("scoring: substitution table has no score for pair")

	// ErrAsymmetricTable indicates score(a,b) differs from score(b,a).
	ErrAsymmetricTable = errors.New("scoring: substitution table is not symmetric")
)
