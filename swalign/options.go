// SPDX-License-Identifier: MIT

package swalign

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultGapSymbol fills alignment tracks where a symbol faces a gap.
	DefaultGapSymbol byte = '-'

	// DefaultMatchMarker marks identical columns in Result.Similarity.
	DefaultMatchMarker byte = '*'

	// DefaultTraceMode recomputes each traceback step from neighbour scores.
	DefaultTraceMode = Recompute

	// DefaultFillMode fills the grid row by row.
	DefaultFillMode = RowMajor

	// DefaultWorkers bounds goroutines per anti-diagonal under AntiDiagonal.
	DefaultWorkers = 4
)

// similarityBlank marks a non-matching column in Result.Similarity.
const similarityBlank byte = ' '

// minCellsPerWorker keeps short anti-diagonals on the calling goroutine.
const minCellsPerWorker = 64

// Option customizes Build, Render and Align. Constructors panic on
// nonsensical values; the algorithms themselves never panic.
type Option func(*config)

type config struct {
	gapSymbol   byte
	matchMarker byte
	traceMode   TraceMode
	fill        FillMode
	workers     int
}

// newConfig applies opts over the defaults in order.
func newConfig(opts ...Option) config {
	c := config{
		gapSymbol:   DefaultGapSymbol,
		matchMarker: DefaultMatchMarker,
		traceMode:   DefaultTraceMode,
		fill:        DefaultFillMode,
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithGapSymbol sets the placeholder used in alignment tracks.
// Panics if s equals the similarity blank (' ').
func WithGapSymbol(s byte) Option {
	if s == similarityBlank {
		panic("swalign: WithGapSymbol(' ')")
	}
	return func(c *config) {
		c.gapSymbol = s
	}
}

// WithMatchMarker sets the similarity marker for identical columns.
// Panics if m equals the similarity blank (' ').
func WithMatchMarker(m byte) Option {
	if m == similarityBlank {
		panic("swalign: WithMatchMarker(' ')")
	}
	return func(c *config) {
		c.matchMarker = m
	}
}

// WithTraceMode selects Recompute or StoredDirections.
// Panics on an unknown mode.
func WithTraceMode(m TraceMode) Option {
	if m != Recompute && m != StoredDirections {
		panic("swalign: WithTraceMode(unknown)")
	}
	return func(c *config) {
		c.traceMode = m
	}
}

// WithFill selects RowMajor or AntiDiagonal. Panics on an unknown mode.
func WithFill(m FillMode) Option {
	if m != RowMajor && m != AntiDiagonal {
		panic("swalign: WithFill(unknown)")
	}
	return func(c *config) {
		c.fill = m
	}
}

// WithWorkers bounds the goroutines used per anti-diagonal. Panics if n < 1.
// Has no effect under RowMajor.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("swalign: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
