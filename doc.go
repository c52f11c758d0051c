// SPDX-License-Identifier: MIT

// Package seqalign is a small toolkit for local alignment of symbol
// sequences — DNA first, but any single-byte alphabet works.
//
// 🚀 What is inside?
//
//	grid/     — row-major integer score grid with safe accessors and row views
//	scoring/  — scoring schemes: uniform match/mismatch and symmetric tables,
//	            including a transition/transversion nucleotide table
//	swalign/  — Smith–Waterman: Build the grid, Trace the best path, Render
//	            the aligned strings, or do it all with Align
//	cmd/swalign — command line front end
//
// ✨ Why?
//
//   - Deterministic — fixed fill order, documented tie-breaks, no globals
//   - Safe — sentinel errors everywhere, no panics on user input
//   - Pure Go — the library imports only the standard library
//
// Quick example:
//
//	aln, _ := swalign.Align("TGTTACGG", "GGTTGACTA", scoring.DefaultUniform())
//	fmt.Println(aln.Result.Aligned1) // G-TT-AC
//	fmt.Println(aln.Result.Aligned2) // GGTTGAC
//	fmt.Println(aln.Result.Similarity) // * ** **
//
//	go get github.com/katalvlaran/seqalign
package seqalign
