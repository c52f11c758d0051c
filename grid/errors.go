// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: ". Return sentinels directly or wrap
// them with %w; callers match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// Method tags used in error wrappers.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowView = "RowView"
)

// gridErrorf wraps err with the method name and the offending coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
