// SPDX-License-Identifier: MIT

package swalign_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/swalign"
)

// benchmarkAlign runs Align on random DNA of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int, scheme scoring.Scheme, opts ...swalign.Option) {
	seq1 := randomDNA(newRand(1), n)
	seq2 := randomDNA(newRand(2), m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := swalign.Align(seq1, seq2, scheme, opts...); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_UniformSmall benchmarks 100×100 with the uniform scheme.
func BenchmarkAlign_UniformSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, scoring.DefaultUniform())
}

// BenchmarkAlign_UniformMedium benchmarks 1000×1000 with the uniform scheme.
func BenchmarkAlign_UniformMedium(b *testing.B) {
	benchmarkAlign(b, 1000, 1000, scoring.DefaultUniform())
}

// BenchmarkAlign_TableMedium benchmarks 1000×1000 with the nucleotide table.
func BenchmarkAlign_TableMedium(b *testing.B) {
	benchmarkAlign(b, 1000, 1000, scoring.DefaultTransitionTransversion())
}

// BenchmarkAlign_StoredDirectionsMedium adds the direction grid.
func BenchmarkAlign_StoredDirectionsMedium(b *testing.B) {
	benchmarkAlign(b, 1000, 1000, scoring.DefaultUniform(), swalign.WithTraceMode(swalign.StoredDirections))
}

// BenchmarkAlign_AntiDiagonalMedium fills anti-diagonals on 4 workers.
func BenchmarkAlign_AntiDiagonalMedium(b *testing.B) {
	benchmarkAlign(b, 1000, 1000, scoring.DefaultUniform(),
		swalign.WithFill(swalign.AntiDiagonal), swalign.WithWorkers(4))
}
