// SPDX-License-Identifier: MIT

// Package swalign computes Smith–Waterman local alignments between two
// symbol sequences.
//
// 🚀 What is Smith–Waterman?
//
//	Local alignment finds the pair of substrings of two sequences with the
//	highest cumulative similarity. A (|a|+1)×(|b|+1) grid is filled with
//	scores that never drop below zero; the best local alignment ends at the
//	highest cell and starts where a backward walk first reaches zero.
//	It is widely used in:
//	  • DNA / protein homology search
//	  • Read-to-reference verification
//	  • Primer and probe site inspection
//
// ✨ Key features:
//   - pluggable scoring: scoring.Uniform or a symmetric scoring.Table
//   - recomputation traceback (no back-pointers, O(1) extra memory) or
//     stored directions (WithTraceMode(StoredDirections))
//   - optional anti-diagonal fill on several goroutines (WithFill)
//   - deterministic ties: first maximum in row-major order; traceback
//     prefers diagonal, then up, then left
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/scoring"
//	  "github.com/katalvlaran/seqalign/swalign"
//	)
//
//	aln, err := swalign.Align("TGTTACGG", "GGTTGACTA", scoring.DefaultUniform())
//	if errors.Is(err, swalign.ErrNoLocalAlignment) {
//	  // sequences share nothing that scores above zero
//	}
//	fmt.Println(aln.Result.Aligned1)
//	fmt.Println(aln.Result.Aligned2)
//	fmt.Println(aln.Result.Similarity)
//
// The pipeline is also available piecewise: Build → Trace → Render.
//
// Recurrence (1 ≤ i ≤ |a|, 1 ≤ j ≤ |b|):
//
//	H[i][j] = max(0,
//	              H[i-1][j-1] + score(a[i-1], b[j-1]),
//	              H[i-1][j]   + gap,
//	              H[i][j-1]   + gap)
//
// Performance:
//
//   - Time:   O(|a|·|b|)
//   - Memory: O(|a|·|b|) (one more grid of the same size with StoredDirections)
package swalign
