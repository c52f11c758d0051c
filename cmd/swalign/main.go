// SPDX-License-Identifier: MIT

// Command swalign prints the Smith-Waterman local alignment of two sequences.
package main

import "github.com/katalvlaran/seqalign/internal/cli"

func main() {
	cli.Execute()
}
