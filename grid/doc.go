// SPDX-License-Identifier: MIT

// Package grid provides the integer score grid used by dynamic-programming
// aligners.
//
// What:
//
//   - Grid is a rectangular, row-major matrix of int values.
//   - At/Set are bounds-checked and return sentinel errors instead of panicking.
//   - RowView exposes a no-copy slice of one row for hot inner loops.
//   - Clone produces an independent deep copy; String dumps one row per line.
//
// Why:
//
//	Smith-Waterman and similar recurrences only ever read the previous row and
//	the current row, so a flat buffer with row views keeps the fill loop cache
//	friendly while the public surface stays safe.
//
// Complexity:
//
//   - New:      O(r*c) time and memory (zero-filled).
//   - At/Set:   O(1).
//   - RowView:  O(1), no copy.
//   - Clone:    O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrOutOfRange: an index lies outside the grid.
package grid
