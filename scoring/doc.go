// SPDX-License-Identifier: MIT

// Package scoring defines how pairs of sequence symbols are scored during
// local alignment.
//
// 🚀 What is a scoring scheme?
//
//	A Scheme maps an ordered pair of symbols to an integer similarity and
//	carries a constant gap penalty. Two variants are provided:
//	  • Uniform — one match score, one mismatch score.
//	  • Table   — an explicit, symmetric score for every pair of an Alphabet.
//
// ✨ Key features:
//   - Table lookups are fixed-size arrays indexed by alphabet position, so a
//     table is known to be total as soon as it is constructed.
//   - TransitionTransversion builds the classic nucleotide table where
//     purine↔purine and pyrimidine↔pyrimidine substitutions score better than
//     cross-class ones.
//   - All schemes are immutable values and safe for concurrent use.
//
// ⚙️ Usage:
//
//	u := scoring.Uniform{Match: 3, Mismatch: -3, Gap: -2}
//	t := scoring.DefaultTransitionTransversion()
//	s, err := t.Score('A', 'G') // 1, nil
//
// Errors:
//   - ErrBadAlphabet      — empty alphabet or duplicated symbol.
//   - ErrIncompleteTable  — a pair is missing from a table (at construction),
//     or a symbol outside the alphabet is queried (at lookup).
//   - ErrAsymmetricTable  — score(a,b) != score(b,a).
package scoring
